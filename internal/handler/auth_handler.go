package handler

import (
	"net/http"
	"strings"
	"time"

	"event-org-console/internal/cache"
	"event-org-console/internal/model"
	"event-org-console/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxTokenKey = "auth.token"
	ctxUserKey  = "auth.user"
)

// RequireSession 沒有 token 或 token 不在 SessionStore 時回 401 並帶登入頁位置
func RequireSession(store cache.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		user, err := store.Get(c, token)
		if err != nil {
			handleError(c, err, "RequireSession")
			c.Abort()
			return
		}
		c.Set(ctxTokenKey, token)
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func tokenFrom(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

func userFrom(c *gin.Context) *model.User {
	user, _ := c.Get(ctxUserKey)
	u, _ := user.(*model.User)
	return u
}

type AuthHandler struct {
	store    cache.SessionStore
	sessions *service.SessionManager
	ttl      time.Duration
}

func NewAuthHandler(store cache.SessionStore, sessions *service.SessionManager, ttl time.Duration) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions, ttl: ttl}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("session", h.SignIn)
		router.DELETE("session", RequireSession(h.store), h.SignOut)
		router.GET("me", RequireSession(h.store), h.Me)
	}
}

// SignInRequest 後端簽發的 token 與使用者資料
type SignInRequest struct {
	Token string     `json:"token" binding:"required"`
	User  model.User `json:"user"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.store.Save(c, req.Token, req.User, h.ttl); err != nil {
		handleError(c, err, "SignIn")
		return
	}
	handleSuccess(c, req.User, http.StatusCreated)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := tokenFrom(c)
	if err := h.store.Delete(c, token); err != nil {
		handleError(c, err, "SignOut")
		return
	}
	h.sessions.CloseAll(token)
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	handleSuccess(c, userFrom(c), http.StatusOK)
}
