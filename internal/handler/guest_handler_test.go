package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-org-console/config"
	"event-org-console/internal/handler"
	"event-org-console/internal/model"
	"event-org-console/internal/notify"
	"event-org-console/internal/service"
	"event-org-console/internal/service/mocks"
	apperrors "event-org-console/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const guestsURL = "/api/v1/events/evt-1/guests"

type guestBody struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	RSVPStatus string `json:"rsvpStatus"`
	IsNew      bool   `json:"isNew"`
	IsEditing  bool   `json:"isEditing"`
}

type guestListBody struct {
	EventID string      `json:"eventId"`
	State   string      `json:"state"`
	Guests  []guestBody `json:"guests"`
}

// inboxNotifier 直接寫入 Inbox，省掉隊列與 worker
type inboxNotifier struct {
	inbox *notify.Inbox
}

func (n inboxNotifier) Notify(ctx context.Context, eventID string, level model.NotificationLevel, message string) {
	_ = n.inbox.Deliver(ctx, &model.Notification{ID: message, EventID: eventID, Level: level, Message: message})
}

func setupGuestTestRouter(t *testing.T) (*gin.Engine, *mocks.MockGuestAPI) {
	t.Helper()
	api := mocks.NewMockGuestAPI(t)
	cfg := config.LoadTestConfig()
	inbox := notify.NewInbox(cfg.Notification.InboxSize)
	sessions := service.NewSessionManager(func(string) service.GuestAPI { return api }, inboxNotifier{inbox: inbox}, cfg.API.Timeout)

	router := gin.New()
	handler.NewGuestHandler(sessions, inbox).RegisterRoutes(router, setupSessionStore(t))
	return router, api
}

// openGuestSession 以兩位既有賓客開啟工作階段
func openGuestSession(t *testing.T, router *gin.Engine, api *mocks.MockGuestAPI) {
	t.Helper()
	api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(&model.Event{
		ID: "evt-1",
		GuestList: []model.Guest{
			{ID: "g1", Name: "Ann", Email: "ann@x.io", RSVPStatus: model.RSVPAccepted},
			{ID: "g2", Name: "Bob", Email: "bob@x.io", RSVPStatus: model.RSVPPending},
		},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/session"))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOpenGuestSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(&model.Event{
			ID:        "evt-1",
			GuestList: []model.Guest{{ID: "g1", Name: "Ann", Email: "ann@x.io"}},
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/session"))

		assert.Equal(t, http.StatusOK, w.Code)
		var body guestListBody
		decodeBody(t, w.Body, &body)
		assert.Equal(t, "evt-1", body.EventID)
		assert.Equal(t, "editing", body.State)
		require.Len(t, body.Guests, 1)
		assert.False(t, body.Guests[0].IsNew)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(nil, &apperrors.SyncError{StatusCode: 404, Message: "no such event"}).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/session"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - backend timeout", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		api.EXPECT().GetEvent(mock.Anything, "evt-1").Return(nil, &apperrors.SyncError{Timeout: true}).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/session"))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	})

	t.Run("Failed - no auth", func(t *testing.T) {
		router, _ := setupGuestTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", guestsURL+"/session", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGuestsWithoutSession(t *testing.T) {
	router, _ := setupGuestTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createAuthedRequest("GET", guestsURL))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListGuests(t *testing.T) {
	router, api := setupGuestTestRouter(t)
	openGuestSession(t, router, api)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createAuthedRequest("GET", guestsURL+"?q=BOB"))

	assert.Equal(t, http.StatusOK, w.Code)
	var body guestListBody
	decodeBody(t, w.Body, &body)
	require.Len(t, body.Guests, 1)
	assert.Equal(t, "g2", body.Guests[0].ID)
}

func TestAddGuest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", guestsURL, model.GuestInput{Name: "Cy", Email: "cy@x.io"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var guest guestBody
		decodeBody(t, w.Body, &guest)
		assert.True(t, guest.IsNew)
		assert.True(t, model.IsTemporaryID(guest.ID))
		assert.Equal(t, "pending", guest.RSVPStatus)
	})

	t.Run("Failed - missing email", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", guestsURL, model.GuestInput{Name: "Cy"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		decodeBody(t, w.Body, &body)
		assert.Equal(t, "email", body["field"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", guestsURL, InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateGuest(t *testing.T) {
	t.Run("Field update", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("PATCH", guestsURL+"/g1", gin.H{"field": "company", "value": "Acme"}))

		assert.Equal(t, http.StatusOK, w.Code)
		var guest guestBody
		decodeBody(t, w.Body, &guest)
		assert.Equal(t, "Acme", guest.Company)
	})

	t.Run("Editing toggle", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("PATCH", guestsURL+"/g1", gin.H{"editing": true}))

		assert.Equal(t, http.StatusOK, w.Code)
		var guest guestBody
		decodeBody(t, w.Body, &guest)
		assert.True(t, guest.IsEditing)
	})

	t.Run("Failed - unknown field", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("PATCH", guestsURL+"/g1", gin.H{"field": "shoeSize", "value": "42"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("PATCH", guestsURL+"/g1", gin.H{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - unknown guest", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("PATCH", guestsURL+"/nope", gin.H{"field": "name", "value": "X"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRemoveGuest(t *testing.T) {
	router, api := setupGuestTestRouter(t)
	openGuestSession(t, router, api)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createAuthedRequest("DELETE", guestsURL+"/g2"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createAuthedRequest("DELETE", guestsURL+"/g2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportGuests(t *testing.T) {
	csvContent := "Full Name,Email Address,Company\nCy,cy@x.io,Acme\nDi,di@x.io,\n"

	t.Run("Raw body", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		req, _ := http.NewRequest("POST", guestsURL+"/import", strings.NewReader(csvContent))
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Imported int `json:"imported"`
			Skipped  int `json:"skipped"`
		}
		decodeBody(t, w.Body, &body)
		assert.Equal(t, 2, body.Imported)
		assert.Equal(t, 0, body.Skipped)
	})

	t.Run("Multipart file", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "guests.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(csvContent))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req, _ := http.NewRequest("POST", guestsURL+"/import", &buf)
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("GET", guestsURL))
		var list guestListBody
		decodeBody(t, w.Body, &list)
		assert.Len(t, list.Guests, 4)
	})

	t.Run("Failed - no email column", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		req, _ := http.NewRequest("POST", guestsURL+"/import", strings.NewReader("Name,Phone\nCy,555\n"))
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failed - multipart without file", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "hello"))
		require.NoError(t, mw.Close())

		req, _ := http.NewRequest("POST", guestsURL+"/import", &buf)
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPreviewAndSave(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", guestsURL, model.GuestInput{Name: "Cy", Email: "cy@x.io"}))
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("DELETE", guestsURL+"/g2"))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("GET", guestsURL+"/delta"))
		assert.Equal(t, http.StatusOK, w.Code)
		var preview model.Reconciliation
		decodeBody(t, w.Body, &preview)
		assert.Len(t, preview.Delta.NewGuests, 1)
		assert.Equal(t, []string{"g2"}, preview.Delta.RemovedGuestIDs)

		api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).Return([]model.Guest{
			{ID: "g1", Name: "Ann", Email: "ann@x.io", RSVPStatus: model.RSVPAccepted},
			{ID: "g3", Name: "Cy", Email: "cy@x.io", RSVPStatus: model.RSVPPending},
		}, nil).Once()

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/save"))
		assert.Equal(t, http.StatusOK, w.Code)
		var saved guestListBody
		decodeBody(t, w.Body, &saved)
		assert.Equal(t, "idle", saved.State)
		require.Len(t, saved.Guests, 2)
		assert.Equal(t, "g3", saved.Guests[1].ID)
		assert.False(t, saved.Guests[1].IsNew)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("GET", "/api/v1/events/evt-1/notifications"))
		assert.Equal(t, http.StatusOK, w.Code)
		var notes []model.Notification
		decodeBody(t, w.Body, &notes)
		require.NotEmpty(t, notes)
		assert.Equal(t, model.NotificationSuccess, notes[0].Level)
	})

	t.Run("Failed - backend error keeps working copy", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("DELETE", guestsURL+"/g1"))
		require.Equal(t, http.StatusNoContent, w.Code)

		api.EXPECT().SaveGuests(mock.Anything, "evt-1", mock.Anything).
			Return(nil, &apperrors.SyncError{StatusCode: 500, Message: "db down"}).Once()

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/save"))
		assert.Equal(t, http.StatusBadGateway, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("GET", guestsURL))
		var list guestListBody
		decodeBody(t, w.Body, &list)
		assert.Equal(t, "editing", list.State)
		require.Len(t, list.Guests, 1)
		assert.Equal(t, "g2", list.Guests[0].ID)
	})

	t.Run("Failed - session closed", func(t *testing.T) {
		router, api := setupGuestTestRouter(t)
		openGuestSession(t, router, api)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("DELETE", guestsURL+"/session"))
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, createAuthedRequest("POST", guestsURL+"/save"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
