package timerscope

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_RunsAfterDelay(t *testing.T) {
	mock := clock.NewMock()
	scope := New(mock)

	var fired atomic.Int32
	_, err := scope.Schedule(5*time.Second, func() { fired.Add(1) })
	require.NoError(t, err)

	mock.Add(4 * time.Second)
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, 1, scope.Pending())

	mock.Add(time.Second)
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 0, scope.Pending())
}

func TestScope_Cancel(t *testing.T) {
	mock := clock.NewMock()
	scope := New(mock)

	var fired atomic.Int32
	task, err := scope.Schedule(time.Second, func() { fired.Add(1) })
	require.NoError(t, err)

	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	mock.Add(2 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestScope_CloseCancelsEverything(t *testing.T) {
	mock := clock.NewMock()
	scope := New(mock)

	var fired atomic.Int32
	for i := 0; i < 3; i++ {
		_, err := scope.Schedule(time.Duration(i+1)*time.Second, func() { fired.Add(1) })
		require.NoError(t, err)
	}
	require.Equal(t, 3, scope.Pending())

	scope.Close()
	scope.Close()

	mock.Add(10 * time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, 0, scope.Pending())
	assert.True(t, scope.Closed())

	_, err := scope.Schedule(time.Second, func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTask_CancelNil(t *testing.T) {
	var task *Task
	assert.False(t, task.Cancel())
}
