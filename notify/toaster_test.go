package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_ShowAndAutoDismiss(t *testing.T) {
	toaster := NewToaster(20*time.Millisecond, nil)

	toaster.Show("Order placed!")

	cur := toaster.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Order placed!", cur.Message)
	assert.Equal(t, 20*time.Millisecond, cur.ExpiresAt.Sub(cur.ShownAt))

	assert.Eventually(t, func() bool { return toaster.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestToaster_NewMessageReplacesAndRestartsTimer(t *testing.T) {
	toaster := NewToaster(80*time.Millisecond, nil)

	toaster.Show("first")
	time.Sleep(50 * time.Millisecond)
	toaster.Show("second")
	time.Sleep(50 * time.Millisecond)

	cur := toaster.Current()
	require.NotNil(t, cur, "stale timer from the first message must not clear the second")
	assert.Equal(t, "second", cur.Message)

	assert.Eventually(t, func() bool { return toaster.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestToaster_EmptyIgnored(t *testing.T) {
	toaster := NewToaster(time.Minute, nil)

	toaster.Show("")

	assert.Nil(t, toaster.Current())
}

func TestToaster_Dismiss(t *testing.T) {
	toaster := NewToaster(time.Minute, nil)
	toaster.Show("Cart cleared")

	toaster.Dismiss()

	assert.Nil(t, toaster.Current())
}

func TestNewToaster_DefaultDuration(t *testing.T) {
	toaster := NewToaster(0, nil)
	assert.Equal(t, DefaultDuration, toaster.duration)
}
