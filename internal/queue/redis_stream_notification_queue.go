package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"event-org-console/internal/model"
	"event-org-console/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "notifications:stream"
	ConsumerGroupName  = "notification-workers"
	ConsumerNamePrefix = "console"
)

// RedisStreamConfig 可注入的逾時與重試設定；nil 或零值時使用預設
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領回
	MaxRetryCount      int           // 超過此次數視為毒藥訊息並丟棄
	ReadGroupBlockTime time.Duration
	MaxLen             int64 // 串流保留長度上限，0 代表不裁切
}

func defaultRedisStreamConfig() RedisStreamConfig {
	return RedisStreamConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      3,
		ReadGroupBlockTime: 2 * time.Second,
		MaxLen:             10000,
	}
}

type RedisStreamNotificationQueue struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamConfig
	log          *zap.Logger
}

// NewRedisStreamNotificationQueue consumerID 為空時自動產生
func NewRedisStreamNotificationQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamConfig) (NotificationQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
		if config.MaxLen > 0 {
			cfg.MaxLen = config.MaxLen
		}
	}
	q := &RedisStreamNotificationQueue{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
		log:          logger.WithComponent("mq"),
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamNotificationQueue) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamNotificationQueue) Publish(ctx context.Context, n *model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: q.streamKey,
		ID:     "*",
		Values: map[string]interface{}{"notification": string(payload)},
	}
	if q.cfg.MaxLen > 0 {
		args.MaxLen = q.cfg.MaxLen
		args.Approx = true
	}
	if err := q.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

// Subscribe 讀取與 XAUTOCLAIM 兩個迴圈都結束後才關閉 channel
func (q *RedisStreamNotificationQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		q.runAutoClaim(ctx, out)
	}()
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			q.readAndDeliver(ctx, out)
		}
	}()
	go func() {
		wg.Wait()
		close(out)
	}()
	return out, nil
}

// readAndDeliver 只讀新訊息(">")；已投遞但未 ack 的訊息由 XAUTOCLAIM 逾時後領回
func (q *RedisStreamNotificationQueue) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if err == redis.Nil {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		q.log.Error("XReadGroup failed", zap.Error(err))
		time.Sleep(time.Second)
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			if !q.deliver(ctx, out, msg) {
				return
			}
		}
	}
}

func (q *RedisStreamNotificationQueue) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	start := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    start,
			}).Result()
			if err != nil && err != redis.Nil {
				if ctx.Err() == nil {
					q.log.Error("XAutoClaim failed", zap.Error(err))
				}
				continue
			}
			if next == "" {
				next = "0-0"
			}
			start = next

			for _, msg := range claimed {
				if !q.withinRetryBudget(ctx, msg.ID) {
					continue
				}
				if !q.deliver(ctx, out, msg) {
					return
				}
			}
		}
	}
}

// withinRetryBudget 超過重試次數的訊息直接 ack 丟棄
func (q *RedisStreamNotificationQueue) withinRetryBudget(ctx context.Context, id string) bool {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  id,
		End:    id,
		Count:  1,
	}).Result()
	if err != nil || len(pending) == 0 {
		return true
	}
	if int(pending[0].RetryCount) >= q.cfg.MaxRetryCount {
		q.log.Warn("discard poison notification", zap.String("message_id", id), zap.Int64("retries", pending[0].RetryCount))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, id).Err()
		return false
	}
	return true
}

// deliver 回傳 false 代表 ctx 已結束
func (q *RedisStreamNotificationQueue) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	d := q.newDelivery(ctx, msg)
	if d == nil {
		return true
	}
	select {
	case out <- *d:
		return true
	case <-ctx.Done():
		return false
	}
}

func (q *RedisStreamNotificationQueue) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	raw, ok := msg.Values["notification"].(string)
	if !ok {
		q.log.Warn("invalid message: missing notification field", zap.String("message_id", msg.ID))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	var n model.Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		q.log.Warn("unmarshal notification failed", zap.String("message_id", msg.ID), zap.Error(err))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	id := msg.ID
	return &Delivery{
		Data: &n,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, id).Err(); err != nil {
				q.log.Error("XAck failed", zap.String("message_id", id), zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// 留在 PEL，ClaimMinIdleTime 後由 XAUTOCLAIM 重試
				return
			}
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, id).Err(); err != nil {
				q.log.Error("XAck discard failed", zap.String("message_id", id), zap.Error(err))
			}
		},
	}
}
