//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/worker"
	commandsmock "entitlement-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler(t *testing.T) {
	t.Run("runs at start and then on every tick", func(t *testing.T) {
		var runs atomic.Int32
		s := worker.NewScheduler(nil, worker.Job{
			Name:     "count",
			Interval: 10 * time.Millisecond,
			Run: func(ctx context.Context) error {
				runs.Add(1)
				return nil
			},
		})

		s.Start()
		assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
		require.NoError(t, s.Stop(context.Background()))

		after := runs.Load()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, after, runs.Load(), "no runs after Stop")
	})

	t.Run("a failing or panicking job keeps its schedule", func(t *testing.T) {
		var failing, panicking atomic.Int32
		s := worker.NewScheduler(nil,
			worker.Job{Name: "fail", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
				failing.Add(1)
				return errors.New("broker unreachable")
			}},
			worker.Job{Name: "panic", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
				panicking.Add(1)
				panic("boom")
			}},
		)

		s.Start()
		assert.Eventually(t, func() bool { return failing.Load() >= 2 && panicking.Load() >= 2 }, time.Second, 5*time.Millisecond)
		require.NoError(t, s.Stop(context.Background()))
	})

	t.Run("jobs without an interval are skipped", func(t *testing.T) {
		var runs atomic.Int32
		s := worker.NewScheduler(nil, worker.Job{Name: "off", Run: func(context.Context) error {
			runs.Add(1)
			return nil
		}})

		s.Start()
		require.NoError(t, s.Stop(context.Background()))
		assert.Zero(t, runs.Load())
	})

	t.Run("stop gives up when the context ends first", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		started := make(chan struct{})
		s := worker.NewScheduler(nil, worker.Job{Name: "stuck", Interval: time.Hour, Run: func(context.Context) error {
			close(started)
			<-release
			return nil
		}})

		s.Start()
		<-started
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		assert.NoError(t, worker.NewScheduler(nil).Stop(context.Background()))
	})
}

func TestJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := commandsmock.NewMockOrderCommands(ctrl)
	ledger := commandsmock.NewMockLedgerCommands(ctrl)
	bookings := commandsmock.NewMockBookingCommands(ctrl)
	relay := commandsmock.NewMockOutboxRelay(ctrl)
	ctx := context.Background()

	orders.EXPECT().ReconcileStaleOrders(ctx).Return(2, nil)
	ledger.EXPECT().ExpireSweep(ctx).Return(int64(0), nil)
	relay.EXPECT().RelayPending(ctx).Return(0, errors.New("broker unreachable"))
	bookings.EXPECT().PurgeExpiredIdempotencyKeys(ctx).Return(int64(5), nil)

	cfg := config.JobsConfig{ReconcileInterval: time.Minute, ExpireInterval: time.Minute, OutboxInterval: time.Second}
	jobs := worker.Jobs(cfg, orders, ledger, bookings, relay)

	byName := map[string]worker.Job{}
	for _, j := range jobs {
		byName[j.Name] = j
	}
	require.Len(t, byName, 4)
	assert.Equal(t, time.Second, byName[worker.JobRelayOutbox].Interval)

	assert.NoError(t, byName[worker.JobReconcileOrders].Run(ctx))
	assert.NoError(t, byName[worker.JobExpireEntitlements].Run(ctx))
	assert.Error(t, byName[worker.JobRelayOutbox].Run(ctx))
	assert.NoError(t, byName[worker.JobPurgeIdempotency].Run(ctx))
}
