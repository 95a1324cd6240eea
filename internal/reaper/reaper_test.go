package reaper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/hooong/edu-api/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReaper_Tick_DeletesStalePending(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	log := newTestLogger(t)

	r := New(regRepo, 50*time.Millisecond, 10*time.Minute, log)

	regRepo.EXPECT().DeleteStalePending(mock.Anything, 10*time.Minute).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(regRepo.Calls), 1)
}

func TestReaper_Tick_HandlesError(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	log := newTestLogger(t)

	r := New(regRepo, 50*time.Millisecond, 10*time.Minute, log)

	regRepo.EXPECT().DeleteStalePending(mock.Anything, 10*time.Minute).
		Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(regRepo.Calls), 1)
}

func TestReaper_StopsOnContextCancel(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	log := newTestLogger(t)

	r := New(regRepo, time.Second, 10*time.Minute, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop on context cancel")
	}
}
