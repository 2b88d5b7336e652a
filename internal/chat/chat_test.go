package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsGreeting(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(WithClock(func() time.Time { return now }))

	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, greeting, msgs[0].Text)
	assert.Equal(t, supportSender, msgs[0].Sender)
	assert.False(t, msgs[0].Own)
	assert.Equal(t, now.Add(-5*time.Minute), msgs[0].Timestamp)
}

func TestSendAppendsAndAutoReplies(t *testing.T) {
	store := NewStore(WithReplyDelay(10 * time.Millisecond))

	msg, err := store.Send("Preciso de ajuda com a usina 2")
	require.NoError(t, err)
	assert.True(t, msg.Own)
	assert.NotEmpty(t, msg.ID)

	// Reply has not landed yet.
	assert.Len(t, store.Messages(), 2)

	assert.Eventually(t, func() bool {
		return len(store.Messages()) == 3
	}, time.Second, 5*time.Millisecond)

	msgs := store.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, autoReply, last.Text)
	assert.Equal(t, supportSender, last.Sender)
	assert.False(t, last.Own)
}

func TestSendRejectsBlankMessages(t *testing.T) {
	store := NewStore(WithReplyDelay(time.Millisecond))

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := store.Send(text)
		assert.ErrorIs(t, err, ErrEmptyMessage, "input %q", text)
	}

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, store.Messages(), 1, "rejected sends must not schedule replies")
}

func TestConcurrentSendsEachGetAReply(t *testing.T) {
	store := NewStore(WithReplyDelay(5 * time.Millisecond))

	_, err := store.Send("primeira")
	require.NoError(t, err)
	_, err = store.Send("segunda")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(store.Messages()) == 5 // greeting + 2 sends + 2 replies
	}, time.Second, 5*time.Millisecond)
}
