package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/pkg/cleanup"
	"github.com/mindagrow/progression/pkg/entity"
)

type LevelsRepository struct {
	conn PgConnection
}

func NewLevelsRepo(cfg DBConfig) *LevelsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for levelsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for levelsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing levels pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LevelsRepository{
		conn: pool,
	}
}

func NewLevelsRepoWithConn(conn PgConnection) *LevelsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for levelsRepo: " + err.Error())
	}
	return &LevelsRepository{
		conn: conn,
	}
}

// AddXP merges the grant in one upsert; the level columns stay untouched
// here and are cascaded by the service through SetLevel.
func (lr *LevelsRepository) AddXP(ctx context.Context, uid uuid.UUID, amount int) (*entity.LevelState, error) {
	state := entity.LevelState{UserID: uid}
	row := lr.conn.QueryRow(
		ctx,
		`INSERT INTO user_levels (user_id, current_level, current_xp, total_xp, xp_to_next_level)
		VALUES ($1, 1, $2, $2, GREATEST(250 - $2, 0))
		ON CONFLICT (user_id) DO UPDATE SET
			current_xp = user_levels.current_xp + $2,
			total_xp = user_levels.total_xp + $2,
			updated_at = NOW()
		RETURNING current_level, current_xp, total_xp, xp_to_next_level;`,
		uid,
		amount,
	)
	err := row.Scan(&state.CurrentLevel, &state.CurrentXP, &state.TotalXP, &state.XPToNextLevel)
	if err != nil {
		return nil, errors.New("adding xp error: " + err.Error())
	}
	return &state, nil
}

// SetLevel never lowers a level: GREATEST keeps the write idempotent and
// safe against an out-of-order writer.
func (lr *LevelsRepository) SetLevel(ctx context.Context, uid uuid.UUID, level, xpToNext int) error {
	ct, err := lr.conn.Exec(
		ctx,
		`UPDATE user_levels SET current_level = GREATEST(current_level, $2), xp_to_next_level = $3, updated_at = NOW() WHERE user_id = $1;`,
		uid,
		level,
		xpToNext,
	)
	if err != nil {
		return errors.New("setting level error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLevelNotFound
	}
	return nil
}

func (lr *LevelsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.LevelState, error) {
	state := entity.LevelState{UserID: uid}
	row := lr.conn.QueryRow(
		ctx,
		`SELECT current_level, current_xp, total_xp, xp_to_next_level FROM user_levels WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&state.CurrentLevel, &state.CurrentXP, &state.TotalXP, &state.XPToNextLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLevelNotFound
		}
		return nil, errors.New("getting level state error: " + err.Error())
	}
	return &state, nil
}

func (lr *LevelsRepository) GetTopByTotalXP(ctx context.Context, limit int) ([]entity.RankedEntry, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT user_id, total_xp, current_level, ROW_NUMBER() OVER (ORDER BY total_xp DESC) AS rank
		FROM user_levels ORDER BY total_xp DESC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting overall leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.RankedEntry, 0, limit)
	for rows.Next() {
		e := entity.RankedEntry{}
		err = rows.Scan(&e.UserID, &e.TotalXP, &e.Level, &e.Rank)
		if err != nil {
			return nil, errors.New("overall leaderboard row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected overall leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}
