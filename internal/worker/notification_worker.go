package worker

import (
	"context"

	"event-org-console/internal/notify"
	"event-org-console/internal/queue"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// Run 阻塞到 ctx 結束或隊列關閉
	Run(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	queue queue.NotificationQueue
	sink  notify.Sink
	log   *zap.Logger
}

func NewNotificationWorker(q queue.NotificationQueue, sink notify.Sink) NotificationWorker {
	return &NotificationWorkerImpl{
		queue: q,
		sink:  sink,
		log:   logger.WithComponent("worker"),
	}
}

func (w *NotificationWorkerImpl) Run(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	for msg := range msgs {
		if err := w.sink.Deliver(ctx, msg.Data); err != nil {
			w.log.Warn("deliver notification failed, will retry",
				zap.String("notification_id", msg.Data.ID),
				zap.Error(err),
			)
			msg.Nack(true)
			continue
		}
		msg.Ack()
	}
	return nil
}
