package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mindagrow/progression/pkg/entity"
)

type StreakServiceI interface {
	// Counts today's activity towards the user's streak. Idempotent within a
	// calendar day; retries internally on a write conflict.
	RecordActivity(ctx context.Context, uid uuid.UUID) (*entity.StreakStatus, error)
	// Returns the streak status, the zero value for users without a record.
	// A streak broken by a missed day is never reported as active
	GetStatus(ctx context.Context, uid uuid.UUID) (*entity.StreakStatus, error)
	// Zeroes every streak broken by a missed day. Returns the number of records touched
	ExpireStaleStreaks(ctx context.Context) (int64, error)
}

type MissionServiceI interface {
	// Applies amount towards every active mission of missionType for today.
	// Each result carries whether this call completed the mission
	RecordProgress(ctx context.Context, uid uuid.UUID, missionType string, amount int) ([]entity.MissionResult, error)
	// Every active mission joined with today's progress, zero defaults for untouched ones
	ListToday(ctx context.Context, uid uuid.UUID) ([]entity.MissionWithProgress, error)
}

type LevelServiceI interface {
	// Grants XP and cascades the level, handling multi-step jumps from one grant
	ApplyXP(ctx context.Context, uid uuid.UUID, amount int) (*entity.LevelState, error)
	// Returns the level state, the level-1 default for users without a record
	GetState(ctx context.Context, uid uuid.UUID) (*entity.LevelState, error)
}

// AddWeeklyXPOpts flags what the granted XP came from, so the weekly entry
// keeps its games_played and missions_completed counters accurate.
type AddWeeklyXPOpts struct {
	GamePlayed       bool
	MissionCompleted bool
}

type LeaderboardServiceI interface {
	// Credits XP and counters to the user's entry for the current week
	AddWeeklyXP(ctx context.Context, uid uuid.UUID, amount int, opts AddWeeklyXPOpts) error
	// Top entries of the current week ordered by (weekly_xp desc, total_xp desc)
	GetWeeklyLeaderboard(ctx context.Context, limit int) ([]entity.RankedEntry, error)
	// Top users of all time ordered by total_xp desc
	GetOverallLeaderboard(ctx context.Context, limit int) ([]entity.RankedEntry, error)
	// Snapshots rank_position for the week that just ended. Returns the number of ranked entries
	RolloverWeek(ctx context.Context) (int64, error)
}

type ProgressionServiceI interface {
	// Fans one activity event out to the streak, mission and reward pipeline
	OnActivity(ctx context.Context, uid uuid.UUID, activityType string, amount int) (*entity.ActivityResult, error)
	// Grants base session XP and leaderboard credit independent of missions
	GrantActivityXP(ctx context.Context, uid uuid.UUID, amount int, gamePlayed bool) (*entity.LevelState, error)
}
