package feed_test

import (
	"testing"

	"github.com/formpilot/formpilot/src/feed"
	"github.com/stretchr/testify/assert"
)

func TestHubBroadcastReachesSubscribers(t *testing.T) {
	hub := feed.NewHub()

	a := hub.Subscribe(1)
	b := hub.Subscribe(1)
	other := hub.Subscribe(2)

	hub.Broadcast(1, []byte("event"))

	assert.Equal(t, []byte("event"), <-a)
	assert.Equal(t, []byte("event"), <-b)
	assert.Empty(t, other)
}

func TestHubUnsubscribe(t *testing.T) {
	hub := feed.NewHub()

	ch := hub.Subscribe(7)
	hub.Unsubscribe(7, ch)

	hub.Broadcast(7, []byte("event"))
	assert.Empty(t, ch)
}

func TestHubBroadcastWithoutSubscribersIsNoop(t *testing.T) {
	hub := feed.NewHub()
	assert.NotPanics(t, func() { hub.Broadcast(99, []byte("event")) })
}
