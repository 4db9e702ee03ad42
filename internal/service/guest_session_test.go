package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"event-org-console/internal/model"
	"event-org-console/internal/service"
	"event-org-console/internal/service/mocks"
	apperrors "event-org-console/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedNote struct {
	level   model.NotificationLevel
	message string
}

// recordingNotifier 收集提示供斷言
type recordingNotifier struct {
	mu    sync.Mutex
	notes []recordedNote
}

func (n *recordingNotifier) Notify(_ context.Context, _ string, level model.NotificationLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, recordedNote{level: level, message: message})
}

func (n *recordingNotifier) levels() []model.NotificationLevel {
	n.mu.Lock()
	defer n.mu.Unlock()
	levels := make([]model.NotificationLevel, len(n.notes))
	for i, note := range n.notes {
		levels[i] = note.level
	}
	return levels
}

func baselineGuests() []model.Guest {
	return []model.Guest{
		{ID: "g1", Name: "Ann", Email: "ann@x.io", RSVPStatus: model.RSVPAccepted},
		{ID: "g2", Name: "Bob", Email: "bob@x.io", RSVPStatus: model.RSVPPending},
	}
}

func openSession(t *testing.T, api *mocks.MockGuestAPI, notifier *recordingNotifier) *service.GuestSession {
	t.Helper()
	api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(&model.Event{
		ID:        "evt-1",
		Name:      "Launch",
		GuestList: baselineGuests(),
	}, nil).Once()

	session := service.NewGuestSession("evt-1", api, notifier, time.Second)
	_, err := session.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.StateEditing, session.State())
	return session
}

func TestGuestSession_EditBeforeLoad(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	session := service.NewGuestSession("evt-1", api, nil, time.Second)

	_, err := session.Add(model.GuestInput{Name: "Cy", Email: "cy@x.io"})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotOpen)

	_, err = session.Save(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSessionNotOpen)
}

func TestGuestSession_LoadFailureNotifies(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	notifier := &recordingNotifier{}
	api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(nil, &apperrors.SyncError{StatusCode: 404, Message: "event not found"}).Once()

	session := service.NewGuestSession("evt-1", api, notifier, time.Second)
	_, err := session.Load(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrSync)
	assert.Equal(t, []model.NotificationLevel{model.NotificationError}, notifier.levels())
	assert.Equal(t, service.StateIdle, session.State())
}

func TestGuestSession_SaveSuccessReseedsBaseline(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	notifier := &recordingNotifier{}
	session := openSession(t, api, notifier)

	_, err := session.Add(model.GuestInput{Name: "Cy", Email: "cy@x.io"})
	require.NoError(t, err)
	require.NoError(t, session.Update("g1", model.FieldCompany, "Acme"))
	require.NoError(t, session.SetEditing("g1", true))
	require.NoError(t, session.Remove("g2"))

	saved := []model.Guest{
		{ID: "g1", Name: "Ann", Email: "ann@x.io", Company: "Acme", RSVPStatus: model.RSVPAccepted},
		{ID: "g3", Name: "Cy", Email: "cy@x.io", RSVPStatus: model.RSVPPending},
	}
	api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.MatchedBy(func(d model.GuestDelta) bool {
		return len(d.NewGuests) == 1 && d.NewGuests[0].ID == "" &&
			len(d.UpdatedGuests) == 1 && d.UpdatedGuests[0].ID == "g1" &&
			assert.ObjectsAreEqual([]string{"g2"}, d.RemovedGuestIDs)
	})).Return(saved, nil).Once()

	recon, err := session.Save(context.Background())
	require.NoError(t, err)
	assert.Len(t, recon.Delta.NewGuests, 1)
	assert.Equal(t, service.StateIdle, session.State())

	list := session.List("")
	assert.Equal(t, saved, list)
	for _, g := range list {
		assert.False(t, g.IsNew)
		assert.False(t, g.IsEditing)
	}

	preview, err := session.Preview()
	require.NoError(t, err)
	assert.True(t, preview.Delta.IsEmpty())
	assert.Equal(t, []model.NotificationLevel{model.NotificationSuccess}, notifier.levels())
}

func TestGuestSession_SaveFailureKeepsWorkingSet(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "server error", err: &apperrors.SyncError{StatusCode: 500, Message: "boom"}},
		{name: "transport error", err: errors.New("connection refused")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockGuestAPI(t)
			notifier := &recordingNotifier{}
			session := openSession(t, api, notifier)

			_, err := session.Add(model.GuestInput{Name: "Cy", Email: "cy@x.io"})
			require.NoError(t, err)
			require.NoError(t, session.Update("g2", model.FieldRSVPStatus, "declined"))
			before := session.List("")

			api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).Return(nil, tc.err).Once()

			_, err = session.Save(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrSync)
			assert.Equal(t, before, session.List(""))
			assert.Equal(t, service.StateEditing, session.State())
			assert.Equal(t, []model.NotificationLevel{model.NotificationError}, notifier.levels())

			// 重試時送出相同差異
			preview, err := session.Preview()
			require.NoError(t, err)
			assert.Len(t, preview.Delta.NewGuests, 1)
			assert.Len(t, preview.Delta.UpdatedGuests, 1)
		})
	}
}

func TestGuestSession_SaveTimeout(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(&model.Event{ID: "evt-1", GuestList: baselineGuests()}, nil).Once()
	session := service.NewGuestSession("evt-1", api, nil, 20*time.Millisecond)
	_, err := session.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, session.Remove("g1"))

	api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ model.GuestDelta) ([]model.Guest, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	_, err = session.Save(context.Background())

	var syncErr *apperrors.SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.True(t, syncErr.Timeout)
	assert.Len(t, session.List(""), 1)
}

func TestGuestSession_EmptyDeltaSkipsRequest(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	notifier := &recordingNotifier{}
	session := openSession(t, api, notifier)

	recon, err := session.Save(context.Background())

	require.NoError(t, err)
	assert.True(t, recon.Delta.IsEmpty())
	assert.Equal(t, service.StateIdle, session.State())
	assert.Equal(t, []model.NotificationLevel{model.NotificationInfo}, notifier.levels())
	api.AssertNotCalled(t, "SaveGuests", mock.Anything, mock.Anything, mock.Anything)
}

func TestGuestSession_SkippedGuestsWarn(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	notifier := &recordingNotifier{}
	session := openSession(t, api, notifier)

	_, err := session.Add(model.GuestInput{Name: "Cy", Email: "cy@x.io"})
	require.NoError(t, err)
	require.NoError(t, session.Update("g2", model.FieldEmail, ""))

	api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.MatchedBy(func(d model.GuestDelta) bool {
		return len(d.NewGuests) == 1 && len(d.UpdatedGuests) == 0 && len(d.RemovedGuestIDs) == 0
	})).Return(baselineGuests(), nil).Once()

	recon, err := session.Save(context.Background())

	require.NoError(t, err)
	require.Len(t, recon.Skipped, 1)
	assert.Equal(t, "g2", recon.Skipped[0].Guest.ID)
	assert.Equal(t, []model.NotificationLevel{model.NotificationSuccess, model.NotificationWarning}, notifier.levels())
}

func TestGuestSession_RejectsConcurrentSave(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	session := openSession(t, api, &recordingNotifier{})
	require.NoError(t, session.Remove("g1"))

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).
		RunAndReturn(func(context.Context, string, model.GuestDelta) ([]model.Guest, error) {
			close(started)
			<-release
			return baselineGuests()[1:], nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := session.Save(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, service.StateSaving, session.State())
	_, err := session.Save(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSaveInFlight)

	// 儲存中仍可編輯，成功後由後端名單取代
	_, err = session.Add(model.GuestInput{Name: "Late", Email: "late@x.io"})
	require.NoError(t, err)
	assert.Equal(t, service.StateSaving, session.State())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, baselineGuests()[1:], session.List(""))
	assert.Equal(t, service.StateIdle, session.State())
}

func TestGuestSession_CloseDuringSaveDiscardsResult(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	notifier := &recordingNotifier{}
	session := openSession(t, api, notifier)
	require.NoError(t, session.Remove("g1"))
	before := session.List("")

	started := make(chan struct{})
	api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ model.GuestDelta) ([]model.Guest, error) {
			close(started)
			<-ctx.Done()
			return []model.Guest{{ID: "late"}}, nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := session.Save(context.Background())
		done <- err
	}()

	<-started
	session.Close()

	assert.ErrorIs(t, <-done, apperrors.ErrSessionClosed)
	assert.Equal(t, before, session.List(""))
	assert.Empty(t, notifier.levels())

	_, err := session.Add(model.GuestInput{Name: "Cy", Email: "cy@x.io"})
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)
}

func TestGuestSession_Import(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := mocks.NewMockGuestAPI(t)
		notifier := &recordingNotifier{}
		session := openSession(t, api, notifier)

		result, err := session.Import(context.Background(), "Name,Email\nCy,cy@x.io\nNo Mail,\nDi,di@x.io\n")

		require.NoError(t, err)
		assert.Len(t, result.Guests, 2)
		assert.Equal(t, 1, result.Skipped)
		list := session.List("")
		require.Len(t, list, 4)
		assert.True(t, list[2].IsNew)
		assert.True(t, model.IsTemporaryID(list[3].ID))
		assert.Equal(t, []model.NotificationLevel{model.NotificationWarning}, notifier.levels())
	})

	t.Run("Failed - no email column", func(t *testing.T) {
		api := mocks.NewMockGuestAPI(t)
		notifier := &recordingNotifier{}
		session := openSession(t, api, notifier)

		_, err := session.Import(context.Background(), "Name,Phone\nCy,555\n")

		assert.ErrorIs(t, err, apperrors.ErrParse)
		assert.Len(t, session.List(""), 2)
		assert.Equal(t, []model.NotificationLevel{model.NotificationError}, notifier.levels())
	})
}

func TestGuestSession_UpdateUnknownGuest(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	session := openSession(t, api, &recordingNotifier{})

	err := session.Update("missing", model.FieldName, "X")

	assert.ErrorIs(t, err, apperrors.ErrGuestNotFound)
}

func TestGuestSession_MissingStatusLoadsAsPending(t *testing.T) {
	api := mocks.NewMockGuestAPI(t)
	api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(&model.Event{
		ID:        "evt-1",
		GuestList: []model.Guest{{ID: "g1", Name: "Ann", Email: "ann@x.io"}},
	}, nil).Once()

	session := service.NewGuestSession("evt-1", api, &recordingNotifier{}, time.Second)
	_, err := session.Load(context.Background())
	require.NoError(t, err)

	g, err := session.Get("g1")
	require.NoError(t, err)
	assert.Equal(t, model.RSVPPending, g.RSVPStatus)

	require.NoError(t, session.Update("g1", model.FieldRSVPStatus, ""))
	preview, err := session.Preview()
	require.NoError(t, err)
	assert.True(t, preview.Delta.IsEmpty())
}
