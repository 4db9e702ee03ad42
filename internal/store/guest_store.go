package store

import (
	"sync"

	"event-org-console/internal/model"
	apperrors "event-org-console/pkg/app_errors"
)

// GuestStore 單一活動的賓客工作副本，依插入順序保存（即顯示順序）
type GuestStore struct {
	mu     sync.RWMutex
	guests []model.Guest
}

func NewGuestStore() *GuestStore {
	return &GuestStore{guests: make([]model.Guest, 0)}
}

// Seed 以基準名單取代整個工作集並清除暫時旗標
func (s *GuestStore) Seed(baseline []model.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := make([]model.Guest, len(baseline))
	for i, g := range baseline {
		guests[i] = g.Clean()
	}
	s.guests = guests
}

// Add 驗證 name / email 後附加到最後
func (s *GuestStore) Add(in model.GuestInput) (model.Guest, error) {
	if err := in.Validate(); err != nil {
		return model.Guest{}, err
	}
	guest := in.ToGuest()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests = append(s.guests, guest)
	return guest, nil
}

// BulkAppend 匯入用，不做必填檢查；不合格的賓客會在儲存時被略過但保留在工作集
func (s *GuestStore) BulkAppend(inputs []model.GuestInput) []model.Guest {
	added := make([]model.Guest, 0, len(inputs))
	for _, in := range inputs {
		added = append(added, in.ToGuest())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests = append(s.guests, added...)
	return added
}

func (s *GuestStore) Update(id string, field model.GuestField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &apperrors.NotFoundError{ID: id}
	}
	updated := s.guests[i]
	if err := updated.Set(field, value); err != nil {
		return err
	}
	s.guests[i] = updated
	return nil
}

func (s *GuestStore) SetEditing(id string, editing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &apperrors.NotFoundError{ID: id}
	}
	s.guests[i].IsEditing = editing
	return nil
}

// Remove 新增未存的賓客直接消失；基準內的賓客在差異計算時會被視為刪除
func (s *GuestStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &apperrors.NotFoundError{ID: id}
	}
	s.guests = append(s.guests[:i], s.guests[i+1:]...)
	return nil
}

func (s *GuestStore) Get(id string) (model.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Guest{}, &apperrors.NotFoundError{ID: id}
	}
	return s.guests[i], nil
}

// List 名字、email、電話的不分大小寫子字串過濾，空字串回傳全部
func (s *GuestStore) List(filter string) []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Guest, 0, len(s.guests))
	for _, g := range s.guests {
		if g.Matches(filter) {
			result = append(result, g)
		}
	}
	return result
}

func (s *GuestStore) Snapshot() []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guests := make([]model.Guest, len(s.guests))
	copy(guests, s.guests)
	return guests
}

func (s *GuestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.guests)
}

func (s *GuestStore) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, g := range s.guests {
		if g.ID == id {
			return i
		}
	}
	return -1
}
