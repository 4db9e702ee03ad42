package queue

import (
	"context"

	"event-org-console/internal/model"
)

type Delivery struct {
	Data *model.Notification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	// 發送提示訊息到隊列
	Publish(ctx context.Context, n *model.Notification) error
	// 訂閱提示訊息
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type NotificationQueueImpl struct {
	// 使用 Go channel 作為單機隊列
	ch chan *model.Notification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *model.Notification, bufferSize),
	}
}

func (q *NotificationQueueImpl) Publish(ctx context.Context, n *model.Notification) error {
	select {
	case q.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *NotificationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-q.ch:
				if !ok {
					return
				}
				d := Delivery{
					Data: n,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// 不阻塞 worker；滿了就丟棄
							select {
							case q.ch <- n:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
