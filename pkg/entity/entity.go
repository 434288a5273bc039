package entity

import (
	"time"

	"github.com/google/uuid"
)

// StreakRecord tracks consecutive-day activity for one user.
// LongestStreak is a high-water mark and only grows on increments.
type StreakRecord struct {
	UserID           uuid.UUID  `json:"user_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	IsActive         bool       `json:"is_active"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	StreakStartDate  *time.Time `json:"streak_start_date,omitempty"`
	StreakEndDate    *time.Time `json:"streak_end_date,omitempty"`
}

type StreakStatus struct {
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	IsActiveToday    bool       `json:"is_active_today"`
}

// Mission is a catalog-defined daily objective. The catalog is external
// config data; missions are never persisted by this engine.
type Mission struct {
	ID          int    `json:"id" validate:"gt=0"`
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	TargetCount int    `json:"target_count" validate:"gt=0"`
	XPReward    int    `json:"xp_reward" validate:"gte=0"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
}

// MissionProgress is one user's progress on one mission for one day.
// CompletedAt is set exactly once, on the false->true transition.
type MissionProgress struct {
	UserID          uuid.UUID  `json:"user_id"`
	MissionID       int        `json:"mission_id"`
	MissionDate     time.Time  `json:"mission_date"`
	CurrentProgress int        `json:"current_progress"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type MissionWithProgress struct {
	Mission
	CurrentProgress int        `json:"current_progress"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// MissionResult is returned per mission touched by a progress event.
type MissionResult struct {
	Mission
	CurrentProgress int  `json:"current_progress"`
	IsCompleted     bool `json:"is_completed"`
	NewlyCompleted  bool `json:"newly_completed"`
}

type LevelState struct {
	UserID        uuid.UUID `json:"user_id"`
	CurrentLevel  int       `json:"current_level"`
	CurrentXP     int       `json:"current_xp"`
	TotalXP       int       `json:"total_xp"`
	XPToNextLevel int       `json:"xp_to_next_level"`
}

// WeeklyEntry is one user's aggregate for one calendar week.
// RankPosition is nil until the week is rolled over.
type WeeklyEntry struct {
	UserID            uuid.UUID `json:"user_id"`
	WeekStartDate     time.Time `json:"week_start_date"`
	WeekEndDate       time.Time `json:"week_end_date"`
	WeeklyXP          int       `json:"weekly_xp"`
	GamesPlayed       int       `json:"games_played"`
	MissionsCompleted int       `json:"missions_completed"`
	RankPosition      *int      `json:"rank_position,omitempty"`
}

// RankedEntry is a leaderboard row with its 1-based dense rank.
type RankedEntry struct {
	Rank              int       `json:"rank"`
	UserID            uuid.UUID `json:"user_id"`
	WeeklyXP          int       `json:"weekly_xp,omitempty"`
	TotalXP           int       `json:"total_xp"`
	Level             int       `json:"level,omitempty"`
	GamesPlayed       int       `json:"games_played,omitempty"`
	MissionsCompleted int       `json:"missions_completed,omitempty"`
}

// ActivityResult aggregates everything a single activity event changed.
type ActivityResult struct {
	Streak    *StreakStatus   `json:"streak"`
	Missions  []MissionResult `json:"missions"`
	XPAwarded int             `json:"xp_awarded"`
	Level     *LevelState     `json:"level,omitempty"`
}
