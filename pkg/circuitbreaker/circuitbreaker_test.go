package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 3, Timeout: time.Minute})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return boom })
		assert.Equal(t, boom, err)
	}

	err := cb.Execute(func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is open")
}

func TestRecoversAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 1, Timeout: 10 * time.Millisecond})

	require.Error(t, cb.Execute(func() error { return errors.New("boom") }))
	require.Error(t, cb.Execute(func() error { return nil }))

	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 2, Timeout: time.Minute})
	boom := errors.New("boom")

	require.Error(t, cb.Execute(func() error { return boom }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return boom }))

	// Still closed: the success in between reset the count.
	assert.NoError(t, cb.Execute(func() error { return nil }))
}
