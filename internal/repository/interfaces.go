package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mindagrow/progression/pkg/entity"
)

type StreaksRepositoryI interface {
	// Looks up the streak record of a user. Returns ErrStreakNotFound if none exists yet
	Get(ctx context.Context, uid uuid.UUID) (*entity.StreakRecord, error)
	// Inserts or replaces the streak record, guarded by the previously observed
	// last_activity_date. Returns ErrConcurrentUpdate when the guard does not match
	Save(ctx context.Context, record *entity.StreakRecord, observedLast *time.Time) error
	// Zeroes every active streak whose last activity is strictly before cutoff.
	// Returns the number of expired records
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type MissionProgressRepositoryI interface {
	// Applies a clamped progress delta for (uid, missionID, day) in one atomic upsert.
	// completedAt is stored only on the incomplete->complete transition; the returned
	// row carries whatever stamp the row ended up with
	ApplyProgress(ctx context.Context, uid uuid.UUID, missionID int, day time.Time, amount, target int, completedAt time.Time) (*entity.MissionProgress, error)
	// Lists the user's progress rows for one day
	GetForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.MissionProgress, error)
}

type LevelsRepositoryI interface {
	// Adds XP in one atomic upsert and returns the resulting state (level not yet cascaded)
	AddXP(ctx context.Context, uid uuid.UUID, amount int) (*entity.LevelState, error)
	// Writes the derived level (monotonic, never lowers it) and xp_to_next_level
	SetLevel(ctx context.Context, uid uuid.UUID, level, xpToNext int) error
	// Looks up the level state. Returns ErrLevelNotFound if none exists yet
	Get(ctx context.Context, uid uuid.UUID) (*entity.LevelState, error)
	// Top users by all-time XP with 1-based ranks
	GetTopByTotalXP(ctx context.Context, limit int) ([]entity.RankedEntry, error)
}

type LeaderboardRepositoryI interface {
	// Merges weekly XP and counters into the (uid, weekStart) entry in one atomic upsert
	AddWeeklyXP(ctx context.Context, uid uuid.UUID, weekStart, weekEnd time.Time, xp, gamesPlayed, missionsCompleted int) error
	// Top entries for a week ordered by (weekly_xp desc, total_xp desc) with 1-based ranks
	GetWeekTop(ctx context.Context, weekStart time.Time, limit int) ([]entity.RankedEntry, error)
	// Persists rank_position for every entry of a week using the weekly ordering.
	// Returns the number of ranked entries
	SnapshotRanks(ctx context.Context, weekStart time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
