package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"event-org-console/internal/cache"
	"event-org-console/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testToken = "tok-test"

var (
	InvalidJSON = `{"invalid": json}`
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupSessionStore 以 miniredis 建立登入狀態，並預先登入 testToken
func setupSessionStore(t *testing.T) cache.SessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := cache.NewRedisSessionStore(rdb)
	require.NoError(t, store.Save(context.Background(), testToken, model.User{
		ID:    "u1",
		Name:  "Ann Organizer",
		Email: "ann@x.io",
	}, time.Hour))
	return store
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body and bearer token
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func createAuthedRequest(method, url string) *http.Request {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decodeBody(t *testing.T, body *bytes.Buffer, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Bytes(), out))
}
