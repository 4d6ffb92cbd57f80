package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSuccess(t *testing.T) {
	cb := New(DefaultConfig("test"))

	result, err := cb.Execute(func() (interface{}, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestExecutePassesThroughError(t *testing.T) {
	cb := New(DefaultConfig("test"))

	wantErr := errors.New("backend down")
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestTripsAfterFailureThreshold(t *testing.T) {
	cfg := Config{
		Name:             "trip-test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
	cb := New(cfg)

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("fail")
		})
	}

	assert.True(t, cb.IsOpen())

	_, err := cb.Execute(func() (interface{}, error) {
		t.Fatal("call must not pass through an open circuit")
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestDoesNotTripBelowMinRequests(t *testing.T) {
	cfg := DefaultConfig("min-test")
	cfg.MinRequests = 5

	cb := New(cfg)
	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("fail")
		})
	}

	assert.False(t, cb.IsOpen())
}

func TestBackendPollConfig(t *testing.T) {
	cfg := BackendPollConfig()
	assert.Equal(t, "backend-poll", cfg.Name)
	assert.Equal(t, uint32(3), cfg.MinRequests)

	cb := New(cfg)
	assert.Equal(t, "backend-poll", cb.Name())
}
