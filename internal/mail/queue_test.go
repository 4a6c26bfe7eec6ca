package mail

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobQueue_EnqueueAndConsume(t *testing.T) {
	t.Parallel()

	q := NewJobQueue(2, testLogger())

	require.NoError(t, q.Enqueue(Job{To: "a@example.com", Body: "first"}))
	require.NoError(t, q.Enqueue(Job{To: "b@example.com", Body: "second"}))

	got := <-q.GetChannel()
	assert.Equal(t, "a@example.com", got.To)
	assert.Equal(t, "first", got.Body)
}

func TestJobQueue_FullRejectsNewJobs(t *testing.T) {
	t.Parallel()

	q := NewJobQueue(1, testLogger())

	require.NoError(t, q.Enqueue(Job{To: "a@example.com"}))

	err := q.Enqueue(Job{To: "b@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueueFull)

	// The buffered job is untouched by the rejection.
	got := <-q.GetChannel()
	assert.Equal(t, "a@example.com", got.To)
}

func TestJobQueue_Close(t *testing.T) {
	t.Parallel()

	q := NewJobQueue(2, testLogger())
	require.NoError(t, q.Enqueue(Job{To: "a@example.com"}))

	q.Close()
	q.Close() // Idempotent

	err := q.Enqueue(Job{To: "b@example.com"})
	assert.ErrorIs(t, err, ErrQueueClosed)

	// Buffered jobs remain consumable after close.
	got, ok := <-q.GetChannel()
	require.True(t, ok)
	assert.Equal(t, "a@example.com", got.To)

	_, ok = <-q.GetChannel()
	assert.False(t, ok, "channel should be closed once drained")
}
