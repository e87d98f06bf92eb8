package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starrep/starrep/database"
)

func registerTestUser(t *testing.T, email string) int {
	t.Helper()
	s := newTestAuthService()
	userId, err := s.Register(email, "pw123")
	require.NoError(t, err)
	return userId
}

func TestPerformActionAccrues(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "alice@x.com")
	s := &ReputationService{DB: database.GetDB()}

	added, total, err := s.PerformAction(userId, ActionDailyCheckIn)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, total)

	added, total, err = s.PerformAction(userId, ActionCompleteTask)
	require.NoError(t, err)
	assert.Equal(t, 5, added)
	assert.Equal(t, 6, total)
}

func TestPerformActionSequential(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "bob@x.com")
	s := &ReputationService{DB: database.GetDB()}

	for i := 0; i < 10; i++ {
		_, _, err := s.PerformAction(userId, ActionDailyCheckIn)
		require.NoError(t, err)
	}

	score, err := s.GetScore(userId)
	require.NoError(t, err)
	assert.Equal(t, 10, score)
}

func TestPerformActionConcurrentNoLostUpdates(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "carol@x.com")
	s := &ReputationService{DB: database.GetDB()}

	const workers = 8
	const perWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, _, err := s.PerformAction(userId, ActionDailyCheckIn); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent action: %v", err)
	}

	score, err := s.GetScore(userId)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, score)
}

func TestPerformActionUnknown(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "dave@x.com")
	s := &ReputationService{DB: database.GetDB()}

	_, _, err := s.PerformAction(userId, Action("unknown-action"))
	assert.ErrorIs(t, err, ErrInvalidAction)

	// Score must be untouched after the rejection.
	score, err := s.GetScore(userId)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestGetScoreDefaultsToZero(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "eve@x.com")
	s := &ReputationService{DB: database.GetDB()}

	score, err := s.GetScore(userId)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	// A missing record also reads as zero.
	score, err = s.GetScore(9999)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestActionPoints(t *testing.T) {
	points, ok := ActionDailyCheckIn.Points()
	assert.True(t, ok)
	assert.Equal(t, 1, points)

	points, ok = ActionCompleteTask.Points()
	assert.True(t, ok)
	assert.Equal(t, 5, points)

	_, ok = Action("free-points").Points()
	assert.False(t, ok)
}
