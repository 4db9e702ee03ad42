package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"event-org-console/internal/model"
	apperrors "event-org-console/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

type SessionStore interface {
	// 登入：保存 token 對應的使用者
	Save(ctx context.Context, token string, user model.User, ttl time.Duration) error
	// 驗證：token 不存在或過期時回傳 ErrUnauthorized
	Get(ctx context.Context, token string) (*model.User, error)
	// 登出
	Delete(ctx context.Context, token string) error
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &RedisSessionStore{
		client: client,
	}
}

// 登入狀態 key
func (s *RedisSessionStore) getSessionKey(token string) string {
	return fmt.Sprintf("auth:session:%s", token)
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, user model.User, ttl time.Duration) error {
	if token == "" {
		return apperrors.ErrInvalidInput
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.getSessionKey(token), data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	data, err := s.client.Get(ctx, s.getSessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		// 內容損毀視同未登入
		return nil, apperrors.ErrUnauthorized
	}
	return &user, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}
