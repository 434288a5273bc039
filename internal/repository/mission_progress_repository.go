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

type MissionProgressRepository struct {
	conn PgConnection
}

func NewMissionProgressRepo(cfg DBConfig) *MissionProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for missionProgressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for missionProgressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing mission progress pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MissionProgressRepository{
		conn: pool,
	}
}

func NewMissionProgressRepoWithConn(conn PgConnection) *MissionProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for missionProgressRepo: " + err.Error())
	}
	return &MissionProgressRepository{
		conn: conn,
	}
}

// ApplyProgress is a single upsert, so two concurrent deltas for the same
// key serialize on the row and both increments survive. Progress is clamped
// to the target and completed_at keeps its first value forever: the caller
// that finds its own stamp in the returned row is the one that completed
// the mission.
func (mr *MissionProgressRepository) ApplyProgress(ctx context.Context, uid uuid.UUID, missionID int, day time.Time, amount, target int, completedAt time.Time) (*entity.MissionProgress, error) {
	progress := entity.MissionProgress{
		UserID:      uid,
		MissionID:   missionID,
		MissionDate: day,
	}
	row := mr.conn.QueryRow(
		ctx,
		`INSERT INTO user_daily_missions (user_id, mission_id, mission_date, current_progress, is_completed, completed_at)
		VALUES ($1, $2, $3, LEAST($4, $5), $4 >= $5, CASE WHEN $4 >= $5 THEN $6 END)
		ON CONFLICT (user_id, mission_id, mission_date) DO UPDATE SET
			current_progress = LEAST(user_daily_missions.current_progress + $4, $5),
			is_completed = user_daily_missions.is_completed OR user_daily_missions.current_progress + $4 >= $5,
			completed_at = COALESCE(user_daily_missions.completed_at, CASE WHEN user_daily_missions.current_progress + $4 >= $5 THEN $6 END),
			updated_at = NOW()
		RETURNING current_progress, is_completed, completed_at;`,
		uid,
		missionID,
		day,
		amount,
		target,
		completedAt,
	)
	err := row.Scan(&progress.CurrentProgress, &progress.IsCompleted, &progress.CompletedAt)
	if err != nil {
		return nil, errors.New("applying mission progress error: " + err.Error())
	}
	return &progress, nil
}

func (mr *MissionProgressRepository) GetForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.MissionProgress, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT mission_id, current_progress, is_completed, completed_at FROM user_daily_missions WHERE user_id = $1 AND mission_date = $2;`,
		uid,
		day,
	)
	if err != nil {
		return nil, errors.New("getting mission progress for day error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.MissionProgress, 0, 4)
	for rows.Next() {
		p := entity.MissionProgress{UserID: uid, MissionDate: day}
		err = rows.Scan(&p.MissionID, &p.CurrentProgress, &p.IsCompleted, &p.CompletedAt)
		if err != nil {
			return nil, errors.New("mission progress row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected mission progress rows error: " + rows.Err().Error())
	}
	return result, nil
}
