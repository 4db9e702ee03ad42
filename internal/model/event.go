package model

import "time"

// Event 後端回傳的活動文件
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Date        *time.Time   `json:"date,omitempty"`
	Location    string       `json:"location,omitempty"`
	GuestList   []Guest      `json:"guestList"`
	TicketTypes []TicketType `json:"ticketTypes"`
	Schedule    []Activity   `json:"schedule"`
	Speakers    []Speaker    `json:"speakers"`
}

// TicketType 票種，賓客模組只讀
type TicketType struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Price          float64    `json:"price"`
	Quantity       int        `json:"quantity"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	Description    string     `json:"description,omitempty"`
}

// IsOnSale 檢查票種在指定時間是否仍可販售
func (t TicketType) IsOnSale(now time.Time) bool {
	if t.Quantity <= 0 {
		return false
	}
	return t.AvailableUntil == nil || now.Before(*t.AvailableUntil)
}

type Activity struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Location    string    `json:"location,omitempty"`
	SpeakerRef  string    `json:"speakerRef,omitempty"`
}

type Speaker struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name" binding:"required"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Email   string `json:"email,omitempty"`
}

// EventOverview 看板用的活動摘要
type EventOverview struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Date        *time.Time         `json:"date,omitempty"`
	Location    string             `json:"location,omitempty"`
	GuestCount  int                `json:"guestCount"`
	RSVPCounts  map[RSVPStatus]int `json:"rsvpCounts"`
	TicketTypes []TicketType       `json:"ticketTypes"`
	Schedule    []Activity         `json:"schedule"`
	Speakers    []Speaker          `json:"speakers"`
}

// Overview 依 RSVP 狀態統計賓客數
func (e *Event) Overview() EventOverview {
	counts := map[RSVPStatus]int{
		RSVPPending:   0,
		RSVPAccepted:  0,
		RSVPDeclined:  0,
		RSVPCancelled: 0,
	}
	for _, g := range e.GuestList {
		counts[g.Clean().RSVPStatus]++
	}
	return EventOverview{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date,
		Location:    e.Location,
		GuestCount:  len(e.GuestList),
		RSVPCounts:  counts,
		TicketTypes: e.TicketTypes,
		Schedule:    e.Schedule,
		Speakers:    e.Speakers,
	}
}
