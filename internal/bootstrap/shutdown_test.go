package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStopper struct {
	mock.Mock
}

func (m *mockStopper) Stop(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPool struct {
	mock.Mock
}

func (m *mockPool) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockPool) Close()                         { m.Called() }

type recordingHalter struct {
	name  string
	order *[]string
}

func (h recordingHalter) Stop() { *h.order = append(*h.order, h.name) }

func TestGracefulShutdown(t *testing.T) {
	t.Run("stops server then closes pool", func(t *testing.T) {
		var order []string
		srv := &mockStopper{}
		srv.On("Stop", mock.Anything).Return(nil).Run(func(mock.Arguments) { order = append(order, "server") })
		pool := &mockPool{}
		pool.On("Close").Run(func(mock.Arguments) { order = append(order, "pool") })

		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

		assert.Equal(t, []string{"server", "pool"}, order)
		srv.AssertExpectations(t)
		pool.AssertExpectations(t)
	})

	t.Run("closes streams before the server and workers after", func(t *testing.T) {
		var order []string
		srv := &mockStopper{}
		srv.On("Stop", mock.Anything).Return(nil).Run(func(mock.Arguments) { order = append(order, "server") })
		pool := &mockPool{}
		pool.On("Close").Run(func(mock.Arguments) { order = append(order, "pool") })

		GracefulShutdown(context.Background(), ShutdownComponents{
			Events:  recordingHalter{"events", &order},
			Server:  srv,
			Workers: []Halter{recordingHalter{"scheduler", &order}, nil, recordingHalter{"workers", &order}},
			DBPool:  pool,
		})

		assert.Equal(t, []string{"events", "server", "scheduler", "workers", "pool"}, order)
	})

	t.Run("server error does not skip pool", func(t *testing.T) {
		srv := &mockStopper{}
		srv.On("Stop", mock.Anything).Return(assert.AnError)
		pool := &mockPool{}
		pool.On("Close")

		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

		pool.AssertExpectations(t)
	})

	t.Run("nothing to stop", func(t *testing.T) {
		assert.NotPanics(t, func() {
			GracefulShutdown(context.Background(), ShutdownComponents{})
		})
	})
}
