package model

import "time"

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification 給使用者看的提示訊息（toast）
type Notification struct {
	ID        string            `json:"id"`
	EventID   string            `json:"eventId"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"createdAt"`
}

// User 與 token 一起保存的使用者資料
type User struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
}
