package notify

import (
	"context"
	"time"

	"event-org-console/internal/model"
	"event-org-console/internal/queue"
	"event-org-console/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// Notifier 使用者提示（toast）。fire-and-forget，不回傳錯誤
type Notifier interface {
	Notify(ctx context.Context, eventID string, level model.NotificationLevel, message string)
}

type QueueNotifier struct {
	queue queue.NotificationQueue
	log   *zap.Logger
	now   func() time.Time
}

func NewQueueNotifier(q queue.NotificationQueue) *QueueNotifier {
	return &QueueNotifier{
		queue: q,
		log:   logger.WithComponent("notify"),
		now:   time.Now,
	}
}

func (n *QueueNotifier) Notify(ctx context.Context, eventID string, level model.NotificationLevel, message string) {
	note := &model.Notification{
		ID:        uuid.NewString(),
		EventID:   eventID,
		Level:     level,
		Message:   message,
		CreatedAt: n.now().UTC(),
	}
	// 使用者請求結束不應讓提示消失，但隊列塞滿時也不能卡住呼叫端
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.queue.Publish(pubCtx, note); err != nil {
		n.log.Error("publish notification failed",
			zap.String("event_id", eventID),
			zap.String("level", string(level)),
			zap.Error(err),
		)
	}
}

// Discard 測試或不需要提示時使用
type Discard struct{}

func (Discard) Notify(context.Context, string, model.NotificationLevel, string) {}
