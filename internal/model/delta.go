package model

// GuestDelta 工作副本相對於基準的差異
type GuestDelta struct {
	NewGuests       []Guest  `json:"newGuests"`
	UpdatedGuests   []Guest  `json:"updatedGuests"`
	RemovedGuestIDs []string `json:"removedGuestIds"`
}

func (d GuestDelta) IsEmpty() bool {
	return len(d.NewGuests) == 0 && len(d.UpdatedGuests) == 0 && len(d.RemovedGuestIDs) == 0
}

// SkippedGuest 因缺少必填欄位而未送出的賓客
type SkippedGuest struct {
	Guest  Guest  `json:"guest"`
	Reason string `json:"reason"`
}

// Reconciliation 差異計算結果
type Reconciliation struct {
	Delta   GuestDelta     `json:"delta"`
	Skipped []SkippedGuest `json:"skipped"`
}

// SaveGuestsRequest 批次更新請求本體
type SaveGuestsRequest struct {
	EventID         string   `json:"eventId"`
	NewGuests       []Guest  `json:"newGuests"`
	UpdatedGuests   []Guest  `json:"updatedGuests"`
	RemovedGuestIDs []string `json:"removedGuestIds"`
}

func NewSaveGuestsRequest(eventID string, delta GuestDelta) SaveGuestsRequest {
	return SaveGuestsRequest{
		EventID:         eventID,
		NewGuests:       nonNilGuests(delta.NewGuests),
		UpdatedGuests:   nonNilGuests(delta.UpdatedGuests),
		RemovedGuestIDs: nonNilIDs(delta.RemovedGuestIDs),
	}
}

// SaveGuestsResponse 後端回傳的權威名單。nil 代表回應缺少 guestList，與空名單不同
type SaveGuestsResponse struct {
	GuestList *[]Guest `json:"guestList"`
}

func nonNilGuests(guests []Guest) []Guest {
	if guests == nil {
		return []Guest{}
	}
	return guests
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
