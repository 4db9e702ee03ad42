package service

import (
	"context"
	"sync"
	"time"

	"event-org-console/internal/notify"
	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

// GuestAPIFactory 依使用者 token 建立遠端客戶端
type GuestAPIFactory func(token string) GuestAPI

type sessionKey struct {
	token   string
	eventID string
}

type managedSession struct {
	session  *GuestSession
	lastSeen time.Time
}

// SessionManager 以 (token, eventID) 管理 GuestSession
type SessionManager struct {
	mu       sync.Mutex
	sessions map[sessionKey]*managedSession
	factory  GuestAPIFactory
	notifier notify.Notifier
	timeout  time.Duration
	log      *zap.Logger
}

func NewSessionManager(factory GuestAPIFactory, notifier notify.Notifier, timeout time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[sessionKey]*managedSession),
		factory:  factory,
		notifier: notifier,
		timeout:  timeout,
		log:      logger.WithComponent("session_manager"),
	}
}

// Open 建立新的工作階段並載入基準；同一鍵的舊工作階段會被關閉
func (m *SessionManager) Open(ctx context.Context, token, eventID string) (*GuestSession, error) {
	session := NewGuestSession(eventID, m.factory(token), m.notifier, m.timeout)
	if _, err := session.Load(ctx); err != nil {
		return nil, err
	}

	key := sessionKey{token: token, eventID: eventID}
	m.mu.Lock()
	old := m.sessions[key]
	m.sessions[key] = &managedSession{session: session, lastSeen: time.Now()}
	m.mu.Unlock()

	if old != nil {
		old.session.Close()
		m.log.Info("replaced guest session", zap.String("event_id", eventID))
	}
	return session, nil
}

func (m *SessionManager) Get(token, eventID string) (*GuestSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[sessionKey{token: token, eventID: eventID}]
	if !ok {
		return nil, apperrors.ErrSessionNotOpen
	}
	entry.lastSeen = time.Now()
	return entry.session, nil
}

// Close 離開頁面時呼叫，工作副本直接丟棄
func (m *SessionManager) Close(token, eventID string) bool {
	key := sessionKey{token: token, eventID: eventID}
	m.mu.Lock()
	entry, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()

	if ok {
		entry.session.Close()
	}
	return ok
}

// CloseAll 登出時關閉該 token 的所有工作階段
func (m *SessionManager) CloseAll(token string) int {
	var closing []*GuestSession
	m.mu.Lock()
	for key, entry := range m.sessions {
		if key.token == token {
			closing = append(closing, entry.session)
			delete(m.sessions, key)
		}
	}
	m.mu.Unlock()

	for _, session := range closing {
		session.Close()
	}
	return len(closing)
}

// Sweep 關閉閒置超過 maxIdle 的工作階段。token 在 SessionStore 過期後不會再被使用，只能靠這裡回收
func (m *SessionManager) Sweep(now time.Time, maxIdle time.Duration) int {
	var closing []*GuestSession
	m.mu.Lock()
	for key, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > maxIdle {
			closing = append(closing, entry.session)
			delete(m.sessions, key)
		}
	}
	m.mu.Unlock()

	for _, session := range closing {
		session.Close()
	}
	if len(closing) > 0 {
		m.log.Info("evicted idle guest sessions", zap.Int("count", len(closing)))
	}
	return len(closing)
}

// RunSweeper 每 interval 執行一次 Sweep，直到 ctx 結束
func (m *SessionManager) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			m.Sweep(now, maxIdle)
		}
	}
}
