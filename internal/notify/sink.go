package notify

import (
	"context"
	"errors"
	"sync"

	"event-org-console/internal/model"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

// Sink 提示訊息的最終去處
type Sink interface {
	Deliver(ctx context.Context, n *model.Notification) error
}

type LogSink struct {
	log *zap.Logger
}

func NewLogSink() *LogSink {
	return &LogSink{log: logger.WithComponent("notify")}
}

func (s *LogSink) Deliver(_ context.Context, n *model.Notification) error {
	fields := []zap.Field{
		zap.String("notification_id", n.ID),
		zap.String("event_id", n.EventID),
		zap.String("message", n.Message),
	}
	switch n.Level {
	case model.NotificationError:
		s.log.Error("notification", fields...)
	case model.NotificationWarning:
		s.log.Warn("notification", fields...)
	default:
		s.log.Info("notification", fields...)
	}
	return nil
}

// Inbox 每個活動保留最近 size 筆提示，供畫面輪詢
type Inbox struct {
	mu    sync.RWMutex
	size  int
	items map[string][]model.Notification
}

func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = 50
	}
	return &Inbox{size: size, items: make(map[string][]model.Notification)}
}

func (b *Inbox) Deliver(_ context.Context, n *model.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.items[n.EventID], *n)
	if len(list) > b.size {
		list = list[len(list)-b.size:]
	}
	b.items[n.EventID] = list
	return nil
}

// Recent 由新到舊
func (b *Inbox) Recent(eventID string) []model.Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := b.items[eventID]
	out := make([]model.Notification, len(list))
	for i := range list {
		out[i] = list[len(list)-1-i]
	}
	return out
}

type MultiSink []Sink

func (m MultiSink) Deliver(ctx context.Context, n *model.Notification) error {
	var errs []error
	for _, s := range m {
		if err := s.Deliver(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
