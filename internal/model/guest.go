package model

import (
	"encoding/json"
	"strings"

	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemporaryIDPrefix 本地暫時 id 前綴，後端發出的 id 不會使用此前綴
const TemporaryIDPrefix = "tmp_"

// RSVPStatus 出席回覆狀態
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAccepted  RSVPStatus = "accepted"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPCancelled RSVPStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined, RSVPCancelled:
		return true
	}
	return false
}

// ParseRSVPStatus 不分大小寫；舊值 "confirmed" 視為 accepted，空字串視為 pending
func ParseRSVPStatus(raw string) (RSVPStatus, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "":
		return RSVPPending, nil
	case "confirmed":
		return RSVPAccepted, nil
	default:
		s := RSVPStatus(v)
		if !s.IsValid() {
			return "", apperrors.NewValidationError(string(FieldRSVPStatus), "unknown rsvp status "+raw)
		}
		return s, nil
	}
}

// UnmarshalJSON 後端資料可能帶舊值或大小寫不一；無法辨識時退回 pending
func (s *RSVPStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRSVPStatus(raw)
	if err != nil {
		logger.WithComponent("model").Warn("unknown rsvp status from server, using pending", zap.String("value", raw))
		parsed = RSVPPending
	}
	*s = parsed
	return nil
}

// Guest 賓客。IsNew / IsEditing 只存在於工作副本，不會序列化到後端
type Guest struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Company       string     `json:"company,omitempty"`
	TicketTypeRef string     `json:"ticketTypeRef,omitempty"`
	RSVPStatus    RSVPStatus `json:"rsvpStatus"`
	Dietary       string     `json:"dietary,omitempty"`
	Allergies     string     `json:"allergies,omitempty"`

	IsNew     bool `json:"-"`
	IsEditing bool `json:"-"`
}

// GuestInput 新增賓客的輸入
type GuestInput struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Company       string     `json:"company"`
	TicketTypeRef string     `json:"ticketTypeRef"`
	RSVPStatus    RSVPStatus `json:"rsvpStatus"`
	Dietary       string     `json:"dietary"`
	Allergies     string     `json:"allergies"`
}

// Validate name 與 email 必填
func (in GuestInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError(string(FieldName), "name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return apperrors.NewValidationError(string(FieldEmail), "email is required")
	}
	if in.RSVPStatus != "" && !in.RSVPStatus.IsValid() {
		return apperrors.NewValidationError(string(FieldRSVPStatus), "unknown rsvp status "+string(in.RSVPStatus))
	}
	return nil
}

// ToGuest 建立尚未儲存的賓客，帶新的暫時 id
func (in GuestInput) ToGuest() Guest {
	status := in.RSVPStatus
	if status == "" {
		status = RSVPPending
	}
	return Guest{
		ID:            NewTemporaryID(),
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Company:       strings.TrimSpace(in.Company),
		TicketTypeRef: strings.TrimSpace(in.TicketTypeRef),
		RSVPStatus:    status,
		Dietary:       strings.TrimSpace(in.Dietary),
		Allergies:     strings.TrimSpace(in.Allergies),
		IsNew:         true,
	}
}

// Input 取回可再次新增的欄位（不含 id 與暫時旗標）
func (g Guest) Input() GuestInput {
	return GuestInput{
		Name:          g.Name,
		Email:         g.Email,
		Phone:         g.Phone,
		Company:       g.Company,
		TicketTypeRef: g.TicketTypeRef,
		RSVPStatus:    g.RSVPStatus,
		Dietary:       g.Dietary,
		Allergies:     g.Allergies,
	}
}

func NewTemporaryID() string {
	return TemporaryIDPrefix + uuid.NewString()
}

func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, TemporaryIDPrefix)
}

// HasServerID 已由後端指派 id
func (g Guest) HasServerID() bool {
	return g.ID != "" && !IsTemporaryID(g.ID)
}

// Eligible 可儲存的最低條件：name 與 email 非空
func (g Guest) Eligible() bool {
	return g.MissingField() == ""
}

// MissingField 回傳第一個缺少的必填欄位，沒有則為空字串
func (g Guest) MissingField() GuestField {
	if strings.TrimSpace(g.Name) == "" {
		return FieldName
	}
	if strings.TrimSpace(g.Email) == "" {
		return FieldEmail
	}
	return ""
}

// SameFields 只比較可比較欄位，忽略 id 與暫時旗標
func (g Guest) SameFields(other Guest) bool {
	return g.Name == other.Name &&
		g.Email == other.Email &&
		g.Phone == other.Phone &&
		g.Company == other.Company &&
		g.TicketTypeRef == other.TicketTypeRef &&
		g.RSVPStatus == other.RSVPStatus &&
		g.Dietary == other.Dietary &&
		g.Allergies == other.Allergies
}

// Clean 清除暫時旗標，供送出或作為基準。後端漏給的 RSVP 狀態視為 pending
func (g Guest) Clean() Guest {
	g.IsNew = false
	g.IsEditing = false
	if g.RSVPStatus == "" {
		g.RSVPStatus = RSVPPending
	}
	return g
}

// Matches 名字、email、電話不分大小寫子字串比對
func (g Guest) Matches(filter string) bool {
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.Email), q) ||
		strings.Contains(strings.ToLower(g.Phone), q)
}
