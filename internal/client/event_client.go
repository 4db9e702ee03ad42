package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"event-org-console/internal/model"
	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 30 * time.Second

// Config 遠端 REST 後端設定，由呼叫端建立後傳入，不使用全域狀態
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // 底層 transport，nil 時使用 http.DefaultClient
}

// EventClient 活動、賓客、議程、講者 API
type EventClient struct {
	baseURL    string
	timeout    time.Duration
	base       *http.Client
	httpClient *http.Client
	log        *zap.Logger
}

func NewEventClient(cfg Config) *EventClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	c := &EventClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		base:    base,
		log:     logger.WithComponent("client"),
	}
	c.httpClient = c.newHTTPClient(nil)
	return c
}

// WithToken 回傳綁定 bearer token 的副本；Authorization 由 oauth2 transport 自動加上
func (c *EventClient) WithToken(token string) *EventClient {
	clone := *c
	clone.httpClient = c.newHTTPClient(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	return &clone
}

func (c *EventClient) newHTTPClient(ts oauth2.TokenSource) *http.Client {
	var httpClient *http.Client
	if ts == nil {
		clone := *c.base
		httpClient = &clone
	} else {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.base)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = c.timeout
	return httpClient
}

func (c *EventClient) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	var event model.Event
	if err := c.do(ctx, http.MethodGet, c.eventPath(eventID), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// SaveGuests 一次送出整個差異；後端整批套用或整批拒絕
func (c *EventClient) SaveGuests(ctx context.Context, eventID string, delta model.GuestDelta) ([]model.Guest, error) {
	req := model.NewSaveGuestsRequest(eventID, delta)
	var resp model.SaveGuestsResponse
	if err := c.do(ctx, http.MethodPost, c.eventPath(eventID, "guests", "bulk"), req, &resp); err != nil {
		return nil, err
	}
	if resp.GuestList == nil {
		c.log.Error("save response missing guestList", zap.String("event_id", eventID))
		return nil, &apperrors.SyncError{StatusCode: http.StatusOK, Message: "invalid response body: missing guestList"}
	}
	if *resp.GuestList == nil {
		return []model.Guest{}, nil
	}
	return *resp.GuestList, nil
}

type scheduleResponse struct {
	Schedule []model.Activity `json:"schedule"`
}

type speakersResponse struct {
	Speakers []model.Speaker `json:"speakers"`
}

func (c *EventClient) CreateActivity(ctx context.Context, eventID string, activity model.Activity) ([]model.Activity, error) {
	var resp scheduleResponse
	err := c.do(ctx, http.MethodPost, c.eventPath(eventID, "schedule"), activity, &resp)
	return resp.Schedule, err
}

func (c *EventClient) UpdateActivity(ctx context.Context, eventID, activityID string, activity model.Activity) ([]model.Activity, error) {
	var resp scheduleResponse
	err := c.do(ctx, http.MethodPut, c.eventPath(eventID, "schedule", activityID), activity, &resp)
	return resp.Schedule, err
}

func (c *EventClient) DeleteActivity(ctx context.Context, eventID, activityID string) ([]model.Activity, error) {
	var resp scheduleResponse
	err := c.do(ctx, http.MethodDelete, c.eventPath(eventID, "schedule", activityID), nil, &resp)
	return resp.Schedule, err
}

func (c *EventClient) CreateSpeaker(ctx context.Context, eventID string, speaker model.Speaker) ([]model.Speaker, error) {
	var resp speakersResponse
	err := c.do(ctx, http.MethodPost, c.eventPath(eventID, "speakers"), speaker, &resp)
	return resp.Speakers, err
}

func (c *EventClient) UpdateSpeaker(ctx context.Context, eventID, speakerID string, speaker model.Speaker) ([]model.Speaker, error) {
	var resp speakersResponse
	err := c.do(ctx, http.MethodPut, c.eventPath(eventID, "speakers", speakerID), speaker, &resp)
	return resp.Speakers, err
}

func (c *EventClient) DeleteSpeaker(ctx context.Context, eventID, speakerID string) ([]model.Speaker, error) {
	var resp speakersResponse
	err := c.do(ctx, http.MethodDelete, c.eventPath(eventID, "speakers", speakerID), nil, &resp)
	return resp.Speakers, err
}

func (c *EventClient) eventPath(eventID string, parts ...string) string {
	segments := []string{c.baseURL, "events", url.PathEscape(eventID)}
	for _, p := range parts {
		segments = append(segments, url.PathEscape(p))
	}
	return strings.Join(segments, "/")
}

func (c *EventClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("url", endpoint), zap.Int("bytes", len(payload)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(ctx, method, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("api response error",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return &apperrors.SyncError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, respBody)}
	}
	c.log.Debug("api response", zap.Int("status_code", resp.StatusCode), zap.Int("bytes", len(respBody)))

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &apperrors.SyncError{StatusCode: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	return nil
}

func (c *EventClient) transportError(ctx context.Context, method, endpoint string, err error) error {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())

	c.log.Warn("api request failed",
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Bool("timeout", timeout),
		zap.Error(err),
	)
	return &apperrors.SyncError{Timeout: timeout, Err: err}
}

// errorMessage 後端錯誤格式為 {"error": "..."} 或 {"message": "..."}，否則退回狀態文字
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(status)
}
