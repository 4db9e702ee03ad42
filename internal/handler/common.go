package handler

import (
	"errors"
	"net/http"

	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignInPath 未登入時前端導向的頁面
const SignInPath = "/signin"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var (
		validationErr *apperrors.ValidationError
		parseErr      *apperrors.ParseError
		syncErr       *apperrors.SyncError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"field":  validationErr.Field,
			"reason": validationErr.Reason,
		})
	case errors.As(err, &parseErr):
		log.Warn("Import failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Import failed",
			"line":   parseErr.Line,
			"reason": parseErr.Reason,
		})
	case errors.Is(err, apperrors.ErrGuestNotFound):
		log.Warn("Guest not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	case errors.Is(err, apperrors.ErrSessionNotOpen):
		log.Warn("Guest session not open")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest session not open",
		})
	case errors.Is(err, apperrors.ErrSaveInFlight):
		log.Warn("Save in flight")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Save already in progress",
		})
	case errors.Is(err, apperrors.ErrSessionClosed):
		log.Warn("Guest session closed")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Guest session closed",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		abortUnauthorized(c)
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.As(err, &syncErr):
		handleSyncError(c, log, syncErr)
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// handleSyncError 遠端後端錯誤。401 代表 token 在後端已失效，一樣導回登入頁
func handleSyncError(c *gin.Context, log *zap.Logger, err *apperrors.SyncError) {
	switch {
	case err.Timeout:
		log.Error("Remote API timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Remote API timed out",
		})
	case err.StatusCode == http.StatusUnauthorized:
		log.Warn("Remote API rejected token")
		abortUnauthorized(c)
	case err.StatusCode == http.StatusNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	default:
		log.Error("Remote API failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Remote API error",
			"status":  err.StatusCode,
			"message": err.Message,
		})
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Unauthorized",
		"redirect": SignInPath,
	})
}
