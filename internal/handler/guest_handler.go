package handler

import (
	"io"
	"net/http"
	"strings"

	"event-org-console/internal/cache"
	"event-org-console/internal/importer"
	"event-org-console/internal/model"
	"event-org-console/internal/notify"
	"event-org-console/internal/service"
	apperrors "event-org-console/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// maxImportSize CSV 上傳上限
const maxImportSize = 5 << 20

type GuestHandler struct {
	sessions *service.SessionManager
	inbox    *notify.Inbox
}

func NewGuestHandler(sessions *service.SessionManager, inbox *notify.Inbox) *GuestHandler {
	return &GuestHandler{sessions: sessions, inbox: inbox}
}

func (h *GuestHandler) RegisterRoutes(r *gin.Engine, store cache.SessionStore) {
	router := r.Group("/api/v1/events/:eventId", RequireSession(store))
	{
		router.POST("guests/session", h.OpenSession)
		router.DELETE("guests/session", h.CloseSession)
		router.GET("guests", h.ListGuests)
		router.POST("guests", h.AddGuest)
		router.PATCH("guests/:guestId", h.UpdateGuest)
		router.DELETE("guests/:guestId", h.RemoveGuest)
		router.POST("guests/import", h.ImportGuests)
		router.GET("guests/delta", h.PreviewDelta)
		router.POST("guests/save", h.SaveGuests)
		router.GET("notifications", h.GetNotifications)
	}
}

// guestView 給前端的賓客資料，帶工作副本旗標
type guestView struct {
	model.Guest
	IsNew     bool `json:"isNew"`
	IsEditing bool `json:"isEditing"`
}

type guestListResponse struct {
	EventID string              `json:"eventId"`
	State   service.SessionState `json:"state"`
	Guests  []guestView         `json:"guests"`
}

// UpdateGuestRequest 單一欄位更新或切換編輯狀態，兩者可同時出現
type UpdateGuestRequest struct {
	Field   *string `json:"field"`
	Value   *string `json:"value"`
	Editing *bool   `json:"editing"`
}

type importResponse struct {
	Imported int         `json:"imported"`
	Skipped  int         `json:"skipped"`
	Message  string      `json:"message"`
	Guests   []guestView `json:"guests"`
}

type saveResponse struct {
	model.Reconciliation
	State  service.SessionState `json:"state"`
	Guests []guestView         `json:"guests"`
}

func (h *GuestHandler) OpenSession(c *gin.Context) {
	session, err := h.sessions.Open(c, tokenFrom(c), c.Param("eventId"))
	if err != nil {
		handleError(c, err, "OpenSession")
		return
	}
	handleSuccess(c, listResponse(session, ""), http.StatusOK)
}

func (h *GuestHandler) CloseSession(c *gin.Context) {
	h.sessions.Close(tokenFrom(c), c.Param("eventId"))
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *GuestHandler) ListGuests(c *gin.Context) {
	session, ok := h.session(c, "ListGuests")
	if !ok {
		return
	}
	handleSuccess(c, listResponse(session, c.Query("q")), http.StatusOK)
}

func (h *GuestHandler) AddGuest(c *gin.Context) {
	session, ok := h.session(c, "AddGuest")
	if !ok {
		return
	}
	var req model.GuestInput
	if err := BindJson(c, &req); err != nil {
		return
	}
	guest, err := session.Add(req)
	if err != nil {
		handleError(c, err, "AddGuest")
		return
	}
	handleSuccess(c, toView(guest), http.StatusCreated)
}

func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	session, ok := h.session(c, "UpdateGuest")
	if !ok {
		return
	}
	var req UpdateGuestRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Field == nil && req.Editing == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One of field or editing is required"})
		return
	}

	id := c.Param("guestId")
	if req.Field != nil {
		field, err := model.ParseGuestField(*req.Field)
		if err != nil {
			handleError(c, err, "UpdateGuest")
			return
		}
		value := ""
		if req.Value != nil {
			value = *req.Value
		}
		if err := session.Update(id, field, value); err != nil {
			handleError(c, err, "UpdateGuest")
			return
		}
	}
	if req.Editing != nil {
		if err := session.SetEditing(id, *req.Editing); err != nil {
			handleError(c, err, "UpdateGuest")
			return
		}
	}

	guest, err := session.Get(id)
	if err != nil {
		handleError(c, err, "UpdateGuest")
		return
	}
	handleSuccess(c, toView(guest), http.StatusOK)
}

func (h *GuestHandler) RemoveGuest(c *gin.Context) {
	session, ok := h.session(c, "RemoveGuest")
	if !ok {
		return
	}
	if err := session.Remove(c.Param("guestId")); err != nil {
		handleError(c, err, "RemoveGuest")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}

// ImportGuests 接受 multipart 的 file 欄位或直接以 body 傳 CSV
func (h *GuestHandler) ImportGuests(c *gin.Context) {
	session, ok := h.session(c, "ImportGuests")
	if !ok {
		return
	}
	content, err := readImport(c)
	if err != nil {
		handleError(c, err, "ImportGuests")
		return
	}
	result, err := session.Import(c, content)
	if err != nil {
		handleError(c, err, "ImportGuests")
		return
	}
	handleSuccess(c, toImportResponse(result), http.StatusOK)
}

func (h *GuestHandler) PreviewDelta(c *gin.Context) {
	session, ok := h.session(c, "PreviewDelta")
	if !ok {
		return
	}
	recon, err := session.Preview()
	if err != nil {
		handleError(c, err, "PreviewDelta")
		return
	}
	handleSuccess(c, recon, http.StatusOK)
}

func (h *GuestHandler) SaveGuests(c *gin.Context) {
	session, ok := h.session(c, "SaveGuests")
	if !ok {
		return
	}
	recon, err := session.Save(c)
	if err != nil {
		handleError(c, err, "SaveGuests")
		return
	}
	handleSuccess(c, saveResponse{
		Reconciliation: recon,
		State:          session.State(),
		Guests:         toViews(session.List("")),
	}, http.StatusOK)
}

func (h *GuestHandler) GetNotifications(c *gin.Context) {
	if h.inbox == nil {
		handleSuccess(c, []model.Notification{}, http.StatusOK)
		return
	}
	handleSuccess(c, h.inbox.Recent(c.Param("eventId")), http.StatusOK)
}

func (h *GuestHandler) session(c *gin.Context, operation string) (*service.GuestSession, bool) {
	session, err := h.sessions.Get(tokenFrom(c), c.Param("eventId"))
	if err != nil {
		handleError(c, err, operation)
		return nil, false
	}
	return session, true
}

func readImport(c *gin.Context) (string, error) {
	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return "", apperrors.ErrInvalidInput
		}
		file, err := header.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()
		r = file
	}

	data, err := io.ReadAll(io.LimitReader(r, maxImportSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxImportSize {
		return "", &apperrors.ParseError{Reason: "file is too large"}
	}
	return string(data), nil
}

func listResponse(session *service.GuestSession, filter string) guestListResponse {
	return guestListResponse{
		EventID: session.EventID(),
		State:   session.State(),
		Guests:  toViews(session.List(filter)),
	}
}

func toImportResponse(result importer.Result) importResponse {
	return importResponse{
		Imported: len(result.Guests),
		Skipped:  result.Skipped,
		Message:  result.Message,
		Guests:   toViews(result.Guests),
	}
}

func toView(g model.Guest) guestView {
	return guestView{Guest: g, IsNew: g.IsNew, IsEditing: g.IsEditing}
}

func toViews(guests []model.Guest) []guestView {
	views := make([]guestView, len(guests))
	for i, g := range guests {
		views[i] = toView(g)
	}
	return views
}
