package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mindagrow/progression/pkg/cleanup"
	"github.com/mindagrow/progression/pkg/entity"
)

type LeaderboardRepository struct {
	conn PgConnection
}

func NewLeaderboardRepo(cfg DBConfig) *LeaderboardRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for leaderboardRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing leaderboard pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LeaderboardRepository{
		conn: pool,
	}
}

func NewLeaderboardRepoWithConn(conn PgConnection) *LeaderboardRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	return &LeaderboardRepository{
		conn: conn,
	}
}

func (br *LeaderboardRepository) AddWeeklyXP(ctx context.Context, uid uuid.UUID, weekStart, weekEnd time.Time, xp, gamesPlayed, missionsCompleted int) error {
	_, err := br.conn.Exec(
		ctx,
		`INSERT INTO weekly_rankings (user_id, week_start_date, week_end_date, weekly_xp, games_played, missions_completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			weekly_xp = weekly_rankings.weekly_xp + $4,
			games_played = weekly_rankings.games_played + $5,
			missions_completed = weekly_rankings.missions_completed + $6,
			updated_at = NOW();`,
		uid,
		weekStart,
		weekEnd,
		xp,
		gamesPlayed,
		missionsCompleted,
	)
	if err != nil {
		return errors.New("adding weekly xp error: " + err.Error())
	}
	return nil
}

// Ties on weekly XP break by all-time XP, so two equal weeks never share a rank.
func (br *LeaderboardRepository) GetWeekTop(ctx context.Context, weekStart time.Time, limit int) ([]entity.RankedEntry, error) {
	rows, err := br.conn.Query(
		ctx,
		`SELECT wr.user_id, wr.weekly_xp, COALESCE(ul.total_xp, 0), COALESCE(ul.current_level, 1), wr.games_played, wr.missions_completed,
			ROW_NUMBER() OVER (ORDER BY wr.weekly_xp DESC, COALESCE(ul.total_xp, 0) DESC) AS rank
		FROM weekly_rankings wr
		LEFT JOIN user_levels ul ON ul.user_id = wr.user_id
		WHERE wr.week_start_date = $1
		ORDER BY wr.weekly_xp DESC, COALESCE(ul.total_xp, 0) DESC
		LIMIT $2;`,
		weekStart,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting weekly leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.RankedEntry, 0, limit)
	for rows.Next() {
		e := entity.RankedEntry{}
		err = rows.Scan(&e.UserID, &e.WeeklyXP, &e.TotalXP, &e.Level, &e.GamesPlayed, &e.MissionsCompleted, &e.Rank)
		if err != nil {
			return nil, errors.New("weekly leaderboard row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected weekly leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}

// SnapshotRanks freezes rank_position for a finished week using the same
// ordering GetWeekTop serves.
func (br *LeaderboardRepository) SnapshotRanks(ctx context.Context, weekStart time.Time) (int64, error) {
	ct, err := br.conn.Exec(
		ctx,
		`UPDATE weekly_rankings wr SET rank_position = ranked.rank_pos, updated_at = NOW()
		FROM (
			SELECT wr2.user_id, ROW_NUMBER() OVER (ORDER BY wr2.weekly_xp DESC, COALESCE(ul.total_xp, 0) DESC) AS rank_pos
			FROM weekly_rankings wr2
			LEFT JOIN user_levels ul ON ul.user_id = wr2.user_id
			WHERE wr2.week_start_date = $1
		) ranked
		WHERE wr.user_id = ranked.user_id AND wr.week_start_date = $1;`,
		weekStart,
	)
	if err != nil {
		return 0, errors.New("snapshotting weekly ranks error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
