package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/internal/repository"
	"github.com/mindagrow/progression/pkg/clock"
	"github.com/mindagrow/progression/pkg/entity"
)

// Attempts per RecordActivity call before a write conflict is surfaced
const maxSaveAttempts = 3

type StreakService struct {
	streaksRepo repository.StreaksRepositoryI
	clk         clock.Clock
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI, clk clock.Clock) *StreakService {
	if streaksRepo == nil || clk == nil {
		log.Fatal("on streak service provided nil deps")
	}
	return &StreakService{
		streaksRepo: streaksRepo,
		clk:         clk,
	}
}

func (serv *StreakService) RecordActivity(ctx context.Context, uid uuid.UUID) (*entity.StreakStatus, error) {
	today := serv.clk.Today()
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		record, err := serv.streaksRepo.Get(ctx, uid)
		if err != nil {
			if !errors.Is(err, errorvalues.ErrStreakNotFound) {
				return nil, errors.New("repository error: " + err.Error())
			}
			record = &entity.StreakRecord{UserID: uid}
		}
		observed := record.LastActivityDate
		if observed != nil && clock.SameDay(*observed, today) {
			// Already counted today
			return streakStatus(record, today), nil
		}
		advanceStreak(record, today)
		err = serv.streaksRepo.Save(ctx, record, observed)
		if err == nil {
			return streakStatus(record, today), nil
		}
		if !errors.Is(err, errorvalues.ErrConcurrentUpdate) {
			return nil, errors.New("repository error: " + err.Error())
		}
		slog.Debug("streak save lost a race, retrying", slog.String("user_id", uid.String()))
	}
	return nil, errorvalues.ErrConcurrentUpdate
}

func (serv *StreakService) GetStatus(ctx context.Context, uid uuid.UUID) (*entity.StreakStatus, error) {
	record, err := serv.streaksRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return &entity.StreakStatus{}, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	today := serv.clk.Today()
	if record.IsActive && record.LastActivityDate != nil && clock.DaysBetween(*record.LastActivityDate, today) > 1 {
		// Broken by a missed day; report it as such even before the nightly sweep runs
		record.CurrentStreak = 0
		record.IsActive = false
	}
	return streakStatus(record, today), nil
}

func (serv *StreakService) ExpireStaleStreaks(ctx context.Context) (int64, error) {
	cutoff := serv.clk.Today().AddDate(0, 0, -1)
	expired, err := serv.streaksRepo.ExpireStale(ctx, cutoff)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	if expired > 0 {
		slog.Info("expired stale streaks", slog.Int64("count", expired))
	}
	return expired, nil
}

// advanceStreak applies one day of activity to the record in place.
// The caller guarantees today is strictly after the last activity date.
func advanceStreak(record *entity.StreakRecord, today time.Time) {
	if record.LastActivityDate != nil && clock.DaysBetween(*record.LastActivityDate, today) == 1 {
		record.CurrentStreak++
	} else {
		record.CurrentStreak = 1
		start := today
		record.StreakStartDate = &start
	}
	if record.CurrentStreak > record.LongestStreak {
		record.LongestStreak = record.CurrentStreak
	}
	record.IsActive = true
	record.StreakEndDate = nil
	last := today
	record.LastActivityDate = &last
}

func streakStatus(record *entity.StreakRecord, today time.Time) *entity.StreakStatus {
	return &entity.StreakStatus{
		CurrentStreak:    record.CurrentStreak,
		LongestStreak:    record.LongestStreak,
		LastActivityDate: record.LastActivityDate,
		IsActiveToday:    record.LastActivityDate != nil && clock.SameDay(*record.LastActivityDate, today),
	}
}
