//go:build unit

package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	limit atomic.Int32
	err   error
	block chan struct{}
}

func (r *countingRunner) ReconcileUnsynced(ctx context.Context, limit int) (*commands.ReconcileReport, error) {
	r.calls.Add(1)
	r.limit.Store(int32(limit))
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return &commands.ReconcileReport{}, ctx.Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return &commands.ReconcileReport{Attempted: 2, Synced: 1, Failed: 1}, nil
}

func TestNewReconciler_InvalidSchedule(t *testing.T) {
	_, err := NewReconciler(config.ReconcileConfig{Schedule: "every now and then", BatchSize: 5}, &countingRunner{})
	require.Error(t, err)
}

func TestReconciler_RunPassesBatchSize(t *testing.T) {
	runner := &countingRunner{}
	r, err := NewReconciler(config.ReconcileConfig{Schedule: "@every 1h", BatchSize: 25}, runner)
	require.NoError(t, err)

	r.Run()

	assert.Equal(t, int32(1), runner.calls.Load())
	assert.Equal(t, int32(25), runner.limit.Load())
}

func TestReconciler_RunSurvivesRunnerError(t *testing.T) {
	runner := &countingRunner{err: errors.New("db down")}
	r, err := NewReconciler(config.ReconcileConfig{Schedule: "@every 1h", BatchSize: 5}, runner)
	require.NoError(t, err)

	assert.NotPanics(t, r.Run)
}

func TestReconciler_StopCancelsInflightRun(t *testing.T) {
	runner := &countingRunner{block: make(chan struct{})}
	r, err := NewReconciler(config.ReconcileConfig{Schedule: "@every 1h", BatchSize: 5}, runner)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		r.Run()
		close(done)
	}()
	require.Eventually(t, func() bool { return runner.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after Stop")
	}
}
