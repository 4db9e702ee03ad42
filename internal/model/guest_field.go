package model

import (
	"strings"

	apperrors "event-org-console/pkg/app_errors"
)

// GuestField 可編輯欄位的封閉集合
type GuestField string

const (
	FieldName       GuestField = "name"
	FieldEmail      GuestField = "email"
	FieldPhone      GuestField = "phone"
	FieldCompany    GuestField = "company"
	FieldTicketType GuestField = "ticketTypeRef"
	FieldRSVPStatus GuestField = "rsvpStatus"
	FieldDietary    GuestField = "dietary"
	FieldAllergies  GuestField = "allergies"
)

var guestFields = []GuestField{
	FieldName, FieldEmail, FieldPhone, FieldCompany,
	FieldTicketType, FieldRSVPStatus, FieldDietary, FieldAllergies,
}

func GuestFields() []GuestField {
	out := make([]GuestField, len(guestFields))
	copy(out, guestFields)
	return out
}

// ParseGuestField 比對時忽略大小寫
func ParseGuestField(raw string) (GuestField, error) {
	for _, f := range guestFields {
		if strings.EqualFold(string(f), strings.TrimSpace(raw)) {
			return f, nil
		}
	}
	return "", apperrors.NewValidationError(raw, "unknown guest field")
}

// Set 更新單一欄位。必填檢查延後到儲存時，只有 rsvpStatus 需要在此正規化
func (g *Guest) Set(field GuestField, value string) error {
	switch field {
	case FieldName:
		g.Name = value
	case FieldEmail:
		g.Email = value
	case FieldPhone:
		g.Phone = value
	case FieldCompany:
		g.Company = value
	case FieldTicketType:
		g.TicketTypeRef = value
	case FieldRSVPStatus:
		status, err := ParseRSVPStatus(value)
		if err != nil {
			return err
		}
		g.RSVPStatus = status
	case FieldDietary:
		g.Dietary = value
	case FieldAllergies:
		g.Allergies = value
	default:
		return apperrors.NewValidationError(string(field), "unknown guest field")
	}
	return nil
}
