package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesChanges(t *testing.T) {
	c, clk := setup(&fakeRemote{})
	ch, cancel := c.Subscribe()
	defer cancel()

	c.LoadTodayData(context.Background(), clk.now(), false)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
	assert.True(t, c.Snapshot().HasData())
}

func TestSubscribeCoalesces(t *testing.T) {
	c, _ := setup(&fakeRemote{})
	ch, cancel := c.Subscribe()
	defer cancel()

	for i := 0; i < 5; i++ {
		c.ClearData()
	}
	assert.Len(t, ch, 1)
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	c, _ := setup(&fakeRemote{})
	ch, cancel := c.Subscribe()
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	require.NotPanics(t, c.ClearData)
}

func TestMultipleSubscribers(t *testing.T) {
	c, _ := setup(&fakeRemote{})
	a, cancelA := c.Subscribe()
	defer cancelA()
	b, cancelB := c.Subscribe()
	defer cancelB()

	c.ClearData()
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}
