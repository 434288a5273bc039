package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/internal/repository"
	"github.com/mindagrow/progression/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddXP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	levelsRepo := repository.NewLevelsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO user_levels`)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Amount       int
		Expected     *entity.LevelState
		MockPrepFunc func()
	}{
		{
			Desc:   "first grant creates the record",
			Error:  nil,
			Amount: 25,
			Expected: &entity.LevelState{
				UserID:        uid,
				CurrentLevel:  1,
				CurrentXP:     25,
				TotalXP:       25,
				XPToNextLevel: 225,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, 25).WillReturnRows(
					pgxmock.NewRows([]string{"current_level", "current_xp", "total_xp", "xp_to_next_level"}).
						AddRow(1, 25, 25, 225),
				)
			},
		},
		{
			Desc:   "grant merges into existing record",
			Error:  nil,
			Amount: 100,
			Expected: &entity.LevelState{
				UserID:        uid,
				CurrentLevel:  2,
				CurrentXP:     350,
				TotalXP:       350,
				XPToNextLevel: 50,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, 100).WillReturnRows(
					pgxmock.NewRows([]string{"current_level", "current_xp", "total_xp", "xp_to_next_level"}).
						AddRow(2, 350, 350, 50),
				)
			},
		},
		{
			Desc:   "db error",
			Error:  errors.New("adding xp error: db error"),
			Amount: 25,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, 25).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			state, err := levelsRepo.AddXP(ctx, uid, tc.Amount)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, state)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	levelsRepo := repository.NewLevelsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE user_levels SET current_level = GREATEST(current_level, $2), xp_to_next_level = $3, updated_at = NOW() WHERE user_id = $1;`)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 2, 150).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "missing record",
			Error: errorvalues.ErrLevelNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 2, 150).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("setting level error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 2, 150).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := levelsRepo.SetLevel(ctx, uid, 2, 150)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLevelState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	levelsRepo := repository.NewLevelsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT current_level, current_xp, total_xp, xp_to_next_level FROM user_levels WHERE user_id = $1;`)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.LevelState
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			Expected: &entity.LevelState{
				UserID:        uid,
				CurrentLevel:  2,
				CurrentXP:     250,
				TotalXP:       250,
				XPToNextLevel: 150,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(
					pgxmock.NewRows([]string{"current_level", "current_xp", "total_xp", "xp_to_next_level"}).
						AddRow(2, 250, 250, 150),
				)
			},
		},
		{
			Desc:  "no record yet",
			Error: errorvalues.ErrLevelNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(
					pgxmock.NewRows([]string{"current_level", "current_xp", "total_xp", "xp_to_next_level"}),
				)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting level state error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			state, err := levelsRepo.Get(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, state)
			}
		})
	}
}

func TestGetTopByTotalXP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	levelsRepo := repository.NewLevelsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, total_xp, current_level, ROW_NUMBER() OVER (ORDER BY total_xp DESC) AS rank`)
	first := uuid.New()
	second := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Expected     []entity.RankedEntry
		MockPrepFunc func()
	}{
		{
			Desc:  "ranked rows",
			Error: nil,
			Expected: []entity.RankedEntry{
				{Rank: 1, UserID: first, TotalXP: 900, Level: 6},
				{Rank: 2, UserID: second, TotalXP: 250, Level: 2},
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(20).WillReturnRows(
					pgxmock.NewRows([]string{"user_id", "total_xp", "current_level", "rank"}).
						AddRow(first, 900, 6, 1).
						AddRow(second, 250, 2, 2),
				)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting overall leaderboard error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(20).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := levelsRepo.GetTopByTotalXP(ctx, 20)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, result)
			}
		})
	}
}
