package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/internal/repository"
	"github.com/mindagrow/progression/pkg/clock"
	"github.com/mindagrow/progression/pkg/entity"
)

const DefaultLeaderboardLimit = 20

type LeaderboardService struct {
	boardRepo  repository.LeaderboardRepositoryI
	levelsRepo repository.LevelsRepositoryI
	clk        clock.Clock
}

func NewLeaderboardService(boardRepo repository.LeaderboardRepositoryI, levelsRepo repository.LevelsRepositoryI, clk clock.Clock) *LeaderboardService {
	if boardRepo == nil || levelsRepo == nil || clk == nil {
		log.Fatal("on leaderboard service provided nil deps")
	}
	return &LeaderboardService{
		boardRepo:  boardRepo,
		levelsRepo: levelsRepo,
		clk:        clk,
	}
}

// AddWeeklyXP accepts amount 0 so a game can be counted without an XP grant.
func (serv *LeaderboardService) AddWeeklyXP(ctx context.Context, uid uuid.UUID, amount int, opts AddWeeklyXPOpts) error {
	if amount < 0 {
		return errorvalues.ErrInvalidAmount
	}
	weekStart := serv.clk.WeekStart(serv.clk.Today())
	gamesPlayed := 0
	if opts.GamePlayed {
		gamesPlayed = 1
	}
	missionsCompleted := 0
	if opts.MissionCompleted {
		missionsCompleted = 1
	}
	err := serv.boardRepo.AddWeeklyXP(ctx, uid, weekStart, clock.WeekEnd(weekStart), amount, gamesPlayed, missionsCompleted)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *LeaderboardService) GetWeeklyLeaderboard(ctx context.Context, limit int) ([]entity.RankedEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	weekStart := serv.clk.WeekStart(serv.clk.Today())
	entries, err := serv.boardRepo.GetWeekTop(ctx, weekStart, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

func (serv *LeaderboardService) GetOverallLeaderboard(ctx context.Context, limit int) ([]entity.RankedEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	entries, err := serv.levelsRepo.GetTopByTotalXP(ctx, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

// RolloverWeek snapshots ranks for the week that ended on the most recent
// Sunday. Entries for the new week appear lazily on first write.
func (serv *LeaderboardService) RolloverWeek(ctx context.Context) (int64, error) {
	endedWeek := serv.clk.WeekStart(serv.clk.Today().AddDate(0, 0, -7))
	ranked, err := serv.boardRepo.SnapshotRanks(ctx, endedWeek)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	slog.Info("weekly ranks snapshotted",
		slog.String("week_start", endedWeek.Format(clock.FormatDate)),
		slog.Int64("entries", ranked))
	return ranked, nil
}
