package notify_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"event-org-console/internal/model"
	"event-org-console/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{}

func (failingSink) Deliver(context.Context, *model.Notification) error {
	return errors.New("boom")
}

func TestInbox_RecentIsBoundedAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	inbox := notify.NewInbox(3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, inbox.Deliver(ctx, &model.Notification{
			ID:      fmt.Sprintf("n%d", i),
			EventID: "evt-1",
			Message: fmt.Sprintf("message %d", i),
		}))
	}
	require.NoError(t, inbox.Deliver(ctx, &model.Notification{ID: "other", EventID: "evt-2"}))

	got := inbox.Recent("evt-1")
	require.Len(t, got, 3)
	assert.Equal(t, "n5", got[0].ID)
	assert.Equal(t, "n4", got[1].ID)
	assert.Equal(t, "n3", got[2].ID)

	assert.Len(t, inbox.Recent("evt-2"), 1)
	assert.Empty(t, inbox.Recent("unknown"))
}

func TestMultiSink_DeliversToAllAndJoinsErrors(t *testing.T) {
	ctx := context.Background()
	inbox := notify.NewInbox(10)
	sink := notify.MultiSink{notify.NewLogSink(), failingSink{}, inbox}

	err := sink.Deliver(ctx, &model.Notification{ID: "n1", EventID: "evt-1", Level: model.NotificationError})

	assert.EqualError(t, err, "boom")
	assert.Len(t, inbox.Recent("evt-1"), 1)
}
