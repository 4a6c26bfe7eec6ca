package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "list:projects", ListKey("projects"))
	assert.Equal(t, "list:tasks", ListKey("tasks"))
}

func TestNilCacheIsDisabled(t *testing.T) {
	t.Parallel()

	var c *ListCache
	ctx := context.Background()

	payload, ok := c.Get(ctx, "list:projects")
	assert.Nil(t, payload)
	assert.False(t, ok)

	// No-ops must not panic on a nil receiver.
	c.Set(ctx, "list:projects", []byte(`[]`))
	c.Invalidate(ctx, "list:projects", "list:tasks")
}

func TestNewWithNilClientReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, New(nil, 0, nil))
}
