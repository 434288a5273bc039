package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/internal/repository"
	"github.com/mindagrow/progression/pkg/entity"
)

type LevelService struct {
	levelsRepo repository.LevelsRepositoryI
}

func NewLevelService(levelsRepo repository.LevelsRepositoryI) *LevelService {
	if levelsRepo == nil {
		log.Fatal("on level service provided nil repo")
	}
	return &LevelService{
		levelsRepo: levelsRepo,
	}
}

// Threshold is the cumulative XP required to hold a level:
// Threshold(1)=100, Threshold(2)=250, Threshold(3)=400, strictly increasing.
func Threshold(level int) int {
	return level*100 + (level-1)*50
}

func (serv *LevelService) ApplyXP(ctx context.Context, uid uuid.UUID, amount int) (*entity.LevelState, error) {
	if amount <= 0 {
		return nil, errorvalues.ErrInvalidAmount
	}
	state, err := serv.levelsRepo.AddXP(ctx, uid, amount)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	// One large grant can cross several thresholds at once
	level := state.CurrentLevel
	for state.CurrentXP >= Threshold(level+1) {
		level++
	}
	xpToNext := Threshold(level+1) - state.CurrentXP
	if level != state.CurrentLevel || xpToNext != state.XPToNextLevel {
		err = serv.levelsRepo.SetLevel(ctx, uid, level, xpToNext)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	state.CurrentLevel = level
	state.XPToNextLevel = xpToNext
	return state, nil
}

func (serv *LevelService) GetState(ctx context.Context, uid uuid.UUID) (*entity.LevelState, error) {
	state, err := serv.levelsRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLevelNotFound) {
			return &entity.LevelState{
				UserID:        uid,
				CurrentLevel:  1,
				XPToNextLevel: Threshold(2),
			}, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return state, nil
}
