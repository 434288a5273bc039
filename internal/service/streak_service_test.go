package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/mindagrow/progression/internal/error_values"
	"github.com/mindagrow/progression/internal/repository/mocks"
	"github.com/mindagrow/progression/internal/service"
	"github.com/mindagrow/progression/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestRecordActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	clk := &fixedClock{now: time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)}
	serv := service.NewStreakService(streaksRepo, clk)
	uid := uuid.New()
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	threeDaysAgo := today.AddDate(0, 0, -3)
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.StreakStatus
		MockPrepFunc func()
	}{
		{
			Desc:  "first ever activity starts a streak",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    1,
				LongestStreak:    1,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrStreakNotFound)
				streaksRepo.EXPECT().Save(gomock.Any(), &entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    1,
					LongestStreak:    1,
					IsActive:         true,
					LastActivityDate: &today,
					StreakStartDate:  &today,
				}, nil).Return(nil)
			},
		},
		{
			Desc:  "consecutive day increments",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    4,
				LongestStreak:    5,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    3,
					LongestStreak:    5,
					IsActive:         true,
					LastActivityDate: &yesterday,
					StreakStartDate:  &threeDaysAgo,
				}, nil)
				streaksRepo.EXPECT().Save(gomock.Any(), &entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    4,
					LongestStreak:    5,
					IsActive:         true,
					LastActivityDate: &today,
					StreakStartDate:  &threeDaysAgo,
				}, &yesterday).Return(nil)
			},
		},
		{
			Desc:  "gap resets the streak but keeps the record",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    1,
				LongestStreak:    6,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    4,
					LongestStreak:    6,
					IsActive:         true,
					LastActivityDate: &threeDaysAgo,
					StreakStartDate:  &threeDaysAgo,
				}, nil)
				streaksRepo.EXPECT().Save(gomock.Any(), &entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    1,
					LongestStreak:    6,
					IsActive:         true,
					LastActivityDate: &today,
					StreakStartDate:  &today,
				}, &threeDaysAgo).Return(nil)
			},
		},
		{
			Desc:  "same day repeat is a no-op",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    2,
				LongestStreak:    2,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    2,
					LongestStreak:    2,
					IsActive:         true,
					LastActivityDate: &today,
					StreakStartDate:  &yesterday,
				}, nil)
			},
		},
		{
			Desc:  "lost race resolves on re-read",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    1,
				LongestStreak:    1,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrStreakNotFound)
				streaksRepo.EXPECT().Save(gomock.Any(), gomock.Any(), nil).Return(errorvalues.ErrConcurrentUpdate)
				// The racing writer already counted today
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    1,
					LongestStreak:    1,
					IsActive:         true,
					LastActivityDate: &today,
					StreakStartDate:  &today,
				}, nil)
			},
		},
		{
			Desc:  "conflict surfaces after bounded retries",
			Error: errorvalues.ErrConcurrentUpdate,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrStreakNotFound).Times(3)
				streaksRepo.EXPECT().Save(gomock.Any(), gomock.Any(), nil).Return(errorvalues.ErrConcurrentUpdate).Times(3)
			},
		},
		{
			Desc:  "repository error",
			Error: errors.New("repository error: db error"),
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			status, err := serv.RecordActivity(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, status)
			}
		})
	}
}

// Walks one user through days 1, 2 and 4 against an in-memory store.
func TestRecordActivityAcrossDays(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	clk := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	serv := service.NewStreakService(streaksRepo, clk)
	uid := uuid.New()

	var stored *entity.StreakRecord
	streaksRepo.EXPECT().Get(gomock.Any(), uid).DoAndReturn(
		func(_ context.Context, _ uuid.UUID) (*entity.StreakRecord, error) {
			if stored == nil {
				return nil, errorvalues.ErrStreakNotFound
			}
			record := *stored
			return &record, nil
		}).AnyTimes()
	streaksRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record *entity.StreakRecord, _ *time.Time) error {
			saved := *record
			stored = &saved
			return nil
		}).AnyTimes()

	ctx := context.Background()

	status, err := serv.RecordActivity(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.CurrentStreak)
	assert.Equal(t, 1, status.LongestStreak)

	// Second call the same day changes nothing
	status, err = serv.RecordActivity(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.CurrentStreak)

	clk.now = clk.now.AddDate(0, 0, 1)
	status, err = serv.RecordActivity(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 2, status.CurrentStreak)
	assert.Equal(t, 2, status.LongestStreak)

	// Day 3 is skipped, day 4 starts over
	clk.now = clk.now.AddDate(0, 0, 2)
	status, err = serv.RecordActivity(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.CurrentStreak)
	assert.Equal(t, 2, status.LongestStreak)
}

func TestGetStreakStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	clk := &fixedClock{now: time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)}
	serv := service.NewStreakService(streaksRepo, clk)
	uid := uuid.New()
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	threeDaysAgo := today.AddDate(0, 0, -3)
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.StreakStatus
		MockPrepFunc func()
	}{
		{
			Desc:     "no record resolves to the zero status",
			Error:    nil,
			Expected: &entity.StreakStatus{},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrStreakNotFound)
			},
		},
		{
			Desc:  "active today",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    3,
				LongestStreak:    7,
				LastActivityDate: &today,
				IsActiveToday:    true,
			},
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    3,
					LongestStreak:    7,
					IsActive:         true,
					LastActivityDate: &today,
				}, nil)
			},
		},
		{
			Desc:  "stale record is never reported as active",
			Error: nil,
			Expected: &entity.StreakStatus{
				CurrentStreak:    0,
				LongestStreak:    7,
				LastActivityDate: &threeDaysAgo,
				IsActiveToday:    false,
			},
			MockPrepFunc: func() {
				// The nightly sweep has not run yet
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(&entity.StreakRecord{
					UserID:           uid,
					CurrentStreak:    5,
					LongestStreak:    7,
					IsActive:         true,
					LastActivityDate: &threeDaysAgo,
				}, nil)
			},
		},
		{
			Desc:  "repository error",
			Error: errors.New("repository error: db error"),
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			status, err := serv.GetStatus(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, status)
			}
		})
	}
}

func TestExpireStaleStreaksService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	clk := &fixedClock{now: time.Date(2025, 3, 12, 0, 5, 0, 0, time.UTC)}
	serv := service.NewStreakService(streaksRepo, clk)
	cutoff := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		Expired      int64
		MockPrepFunc func()
	}{
		{
			Desc:    "expires records older than yesterday",
			Error:   nil,
			Expired: 4,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().ExpireStale(gomock.Any(), cutoff).Return(int64(4), nil)
			},
		},
		{
			Desc:  "repository error",
			Error: errors.New("repository error: db error"),
			MockPrepFunc: func() {
				streaksRepo.EXPECT().ExpireStale(gomock.Any(), cutoff).Return(int64(0), errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			expired, err := serv.ExpireStaleStreaks(ctx)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expired, expired)
			}
		})
	}
}
