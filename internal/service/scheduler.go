package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/mindagrow/progression/pkg/cleanup"
)

const maintenanceJobTimeout = time.Minute

// MaintenanceScheduler owns the two recurring jobs the engine needs:
// the nightly stale-streak sweep and the Monday rank-snapshot rollover.
type MaintenanceScheduler struct {
	sched gocron.Scheduler
}

func NewMaintenanceScheduler(streaks StreakServiceI, board LeaderboardServiceI, loc *time.Location) (*MaintenanceScheduler, error) {
	if streaks == nil || board == nil {
		return nil, errors.New("on maintenance scheduler provided nil services")
	}
	if loc == nil {
		loc = time.UTC
	}
	sched, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, errors.New("creating scheduler error: " + err.Error())
	}
	// Shortly past midnight, after the calendar day has rolled over
	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), maintenanceJobTimeout)
			defer cancel()
			_, err := streaks.ExpireStaleStreaks(ctx)
			if err != nil {
				slog.Error("stale streak sweep failed", slog.String("error", err.Error()))
			}
		}),
		gocron.WithName("expire-stale-streaks"),
	)
	if err != nil {
		return nil, errors.New("scheduling streak sweep error: " + err.Error())
	}
	_, err = sched.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(0, 10, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), maintenanceJobTimeout)
			defer cancel()
			_, err := board.RolloverWeek(ctx)
			if err != nil {
				slog.Error("weekly rank rollover failed", slog.String("error", err.Error()))
			}
		}),
		gocron.WithName("weekly-rank-rollover"),
	)
	if err != nil {
		return nil, errors.New("scheduling weekly rollover error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down maintenance scheduler",
		F:    sched.Shutdown,
	})
	return &MaintenanceScheduler{sched: sched}, nil
}

func (ms *MaintenanceScheduler) Start() {
	ms.sched.Start()
	slog.Info("maintenance scheduler started")
}
