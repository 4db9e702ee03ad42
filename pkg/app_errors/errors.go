package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrParse               = errors.New("csv parse failed")
	ErrSync                = errors.New("guest sync failed")
	ErrSaveInFlight        = errors.New("save already in progress")
	ErrSessionClosed       = errors.New("guest session closed")
	ErrSessionNotOpen      = errors.New("guest session not open")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError 欄位驗證失敗，只在本地處理，不會送到後端
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError 操作的 id 不在工作集內
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("guest %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrGuestNotFound
}

// ParseError CSV 匯入失敗，整批放棄
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SyncError 儲存請求失敗。StatusCode 為 0 代表傳輸層錯誤或逾時
type SyncError struct {
	StatusCode int
	Timeout    bool
	Message    string
	Err        error
}

func (e *SyncError) Error() string {
	switch {
	case e.Timeout:
		return "sync timed out"
	case e.StatusCode != 0:
		return fmt.Sprintf("sync failed with status %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("sync failed: %v", e.Err)
	}
	return "sync failed"
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func (e *SyncError) Is(target error) bool {
	return target == ErrSync
}
