package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mindagrow/progression/pkg/entity"
)

// ProgressionService fans a single activity event out to the streak,
// mission, level and leaderboard pipeline. The reward cascade is three
// sequential keyed writes with no cross-record transaction: each write is
// atomic on its own key, and a failure mid-cascade leaves the earlier
// writes applied. The error reports where the cascade stopped.
type ProgressionService struct {
	streaks  StreakServiceI
	missions MissionServiceI
	levels   LevelServiceI
	board    LeaderboardServiceI
}

func NewProgressionService(streaks StreakServiceI, missions MissionServiceI, levels LevelServiceI, board LeaderboardServiceI) *ProgressionService {
	if streaks == nil || missions == nil || levels == nil || board == nil {
		log.Fatal("on progression service provided nil services")
	}
	return &ProgressionService{
		streaks:  streaks,
		missions: missions,
		levels:   levels,
		board:    board,
	}
}

func (serv *ProgressionService) OnActivity(ctx context.Context, uid uuid.UUID, activityType string, amount int) (*entity.ActivityResult, error) {
	streak, err := serv.streaks.RecordActivity(ctx, uid)
	if err != nil {
		return nil, errors.New("recording streak activity error: " + err.Error())
	}
	missions, err := serv.missions.RecordProgress(ctx, uid, activityType, amount)
	if err != nil {
		return nil, errors.New("recording mission progress error: " + err.Error())
	}
	result := &entity.ActivityResult{
		Streak:   streak,
		Missions: missions,
	}
	for _, mission := range missions {
		if !mission.NewlyCompleted {
			continue
		}
		// A zero-reward mission still counts as completed on the
		// leaderboard; only the XP grant is skipped.
		if mission.XPReward > 0 {
			state, err := serv.levels.ApplyXP(ctx, uid, mission.XPReward)
			if err != nil {
				slog.Error("reward cascade stopped before XP grant",
					slog.String("user_id", uid.String()),
					slog.Int("mission_id", mission.ID))
				return nil, errors.New("granting mission xp error: " + err.Error())
			}
			result.XPAwarded += mission.XPReward
			result.Level = state
		}
		err = serv.board.AddWeeklyXP(ctx, uid, mission.XPReward, AddWeeklyXPOpts{MissionCompleted: true})
		if err != nil {
			slog.Error("reward cascade stopped after XP grant, leaderboard not credited",
				slog.String("user_id", uid.String()),
				slog.Int("mission_id", mission.ID))
			return nil, errors.New("crediting leaderboard error: " + err.Error())
		}
	}
	return result, nil
}

func (serv *ProgressionService) GrantActivityXP(ctx context.Context, uid uuid.UUID, amount int, gamePlayed bool) (*entity.LevelState, error) {
	state, err := serv.levels.ApplyXP(ctx, uid, amount)
	if err != nil {
		return nil, errors.New("granting activity xp error: " + err.Error())
	}
	err = serv.board.AddWeeklyXP(ctx, uid, amount, AddWeeklyXPOpts{GamePlayed: gamePlayed})
	if err != nil {
		slog.Error("activity xp granted but leaderboard not credited",
			slog.String("user_id", uid.String()))
		return nil, errors.New("crediting leaderboard error: " + err.Error())
	}
	return state, nil
}
