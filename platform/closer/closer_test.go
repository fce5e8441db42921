package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	c.AddNamed("mongo", func(context.Context) error { order = append(order, "mongo"); return nil })
	c.AddNamed("kafka", func(context.Context) error { order = append(order, "kafka"); return nil })
	c.AddNamed("http", func(context.Context) error { order = append(order, "http"); return nil })

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"http", "kafka", "mongo"}, order)
}

func TestCloseAllJoinsErrorsAndKeepsGoing(t *testing.T) {
	t.Parallel()

	c := New()
	called := 0
	c.AddNamed("first", func(context.Context) error { called++; return errors.New("boom") })
	c.AddNamed("second", func(context.Context) error { called++; return nil })

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "first: boom")
	assert.Equal(t, 2, called)
}

func TestCloseAllIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New()
	called := 0
	c.Add(func(context.Context) error { called++; return nil })

	require.NoError(t, c.CloseAll(context.Background()))
	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, 1, called)
}

func TestCloseAllSkipsWhenContextDone(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("late", func(context.Context) error { called = true; return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
