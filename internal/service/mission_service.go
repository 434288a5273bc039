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
	"github.com/mindagrow/progression/pkg/catalog"
	"github.com/mindagrow/progression/pkg/clock"
	"github.com/mindagrow/progression/pkg/entity"
)

type MissionService struct {
	progressRepo repository.MissionProgressRepositoryI
	missionsCat  *catalog.Catalog
	clk          clock.Clock
}

func NewMissionService(progressRepo repository.MissionProgressRepositoryI, missionsCat *catalog.Catalog, clk clock.Clock) *MissionService {
	if progressRepo == nil || missionsCat == nil || clk == nil {
		log.Fatal("on mission service provided nil deps")
	}
	return &MissionService{
		progressRepo: progressRepo,
		missionsCat:  missionsCat,
		clk:          clk,
	}
}

func (serv *MissionService) RecordProgress(ctx context.Context, uid uuid.UUID, missionType string, amount int) ([]entity.MissionResult, error) {
	if amount <= 0 {
		return nil, errorvalues.ErrInvalidAmount
	}
	missions := serv.missionsCat.ActiveByType(missionType)
	if len(missions) == 0 {
		slog.Warn("progress event for type with no active missions", slog.String("type", missionType))
		return []entity.MissionResult{}, nil
	}
	today := serv.clk.Today()
	// The stamp identifies the completing call: the upsert stores it only on
	// the incomplete->complete transition, so getting our own stamp back means
	// this call crossed the target. The column is a zoneless timestamp and pgx
	// scans it back labeled UTC, so the stamp must already be UTC for the
	// round-trip to keep identity. Postgres keeps microsecond precision.
	stamp := serv.clk.Now().UTC().Truncate(time.Microsecond)
	results := make([]entity.MissionResult, 0, len(missions))
	for _, mission := range missions {
		progress, err := serv.progressRepo.ApplyProgress(ctx, uid, mission.ID, today, amount, mission.TargetCount, stamp)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		results = append(results, entity.MissionResult{
			Mission:         mission,
			CurrentProgress: progress.CurrentProgress,
			IsCompleted:     progress.IsCompleted,
			NewlyCompleted:  progress.IsCompleted && progress.CompletedAt != nil && progress.CompletedAt.Equal(stamp),
		})
	}
	return results, nil
}

func (serv *MissionService) ListToday(ctx context.Context, uid uuid.UUID) ([]entity.MissionWithProgress, error) {
	rows, err := serv.progressRepo.GetForDay(ctx, uid, serv.clk.Today())
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byMission := make(map[int]entity.MissionProgress, len(rows))
	for _, row := range rows {
		byMission[row.MissionID] = row
	}
	active := serv.missionsCat.Active()
	result := make([]entity.MissionWithProgress, 0, len(active))
	for _, mission := range active {
		item := entity.MissionWithProgress{Mission: mission}
		if progress, ok := byMission[mission.ID]; ok {
			item.CurrentProgress = progress.CurrentProgress
			item.IsCompleted = progress.IsCompleted
			item.CompletedAt = progress.CompletedAt
		}
		result = append(result, item)
	}
	return result, nil
}
