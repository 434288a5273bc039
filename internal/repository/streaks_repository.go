package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/pkg/cleanup"
	"github.com/mindagrow/progression/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing streaks pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.StreakRecord, error) {
	record := entity.StreakRecord{UserID: uid}
	row := sr.conn.QueryRow(
		ctx,
		`SELECT current_streak, longest_streak, is_active, last_activity_date, streak_start_date, streak_end_date FROM user_streaks WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&record.CurrentStreak, &record.LongestStreak, &record.IsActive, &record.LastActivityDate, &record.StreakStartDate, &record.StreakEndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak record error: " + err.Error())
	}
	return &record, nil
}

// Save upserts the whole record. The guard on the previously observed
// last_activity_date turns a concurrent write into a zero-row update
// instead of a lost update.
func (sr *StreaksRepository) Save(ctx context.Context, record *entity.StreakRecord, observedLast *time.Time) error {
	ct, err := sr.conn.Exec(
		ctx,
		`INSERT INTO user_streaks (user_id, current_streak, longest_streak, is_active, last_activity_date, streak_start_date, streak_end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			is_active = EXCLUDED.is_active,
			last_activity_date = EXCLUDED.last_activity_date,
			streak_start_date = EXCLUDED.streak_start_date,
			streak_end_date = EXCLUDED.streak_end_date,
			updated_at = NOW()
		WHERE user_streaks.last_activity_date IS NOT DISTINCT FROM $8;`,
		record.UserID,
		record.CurrentStreak,
		record.LongestStreak,
		record.IsActive,
		record.LastActivityDate,
		record.StreakStartDate,
		record.StreakEndDate,
		observedLast,
	)
	if err != nil {
		return errors.New("saving streak record error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrConcurrentUpdate
	}
	return nil
}

func (sr *StreaksRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := sr.conn.Exec(
		ctx,
		`UPDATE user_streaks SET current_streak = 0, is_active = false, streak_end_date = last_activity_date, updated_at = NOW() WHERE is_active = true AND last_activity_date < $1;`,
		cutoff,
	)
	if err != nil {
		return 0, errors.New("expiring stale streaks error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
