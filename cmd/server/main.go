package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-org-console/config"
	"event-org-console/internal/cache"
	"event-org-console/internal/client"
	"event-org-console/internal/database"
	"event-org-console/internal/handler"
	"event-org-console/internal/notify"
	"event-org-console/internal/queue"
	"event-org-console/internal/service"
	"event-org-console/internal/worker"
	"event-org-console/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout      = 10 * time.Second
	sessionSweepInterval = time.Minute
)

func main() {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.Server.LogLevel)
	log := logger.WithComponent("main")
	defer func() { _ = logger.L.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	notifications, err := newNotificationQueue(ctx, cfg, rdb)
	if err != nil {
		log.Fatal("Failed to initialize notification queue", zap.Error(err))
	}
	inbox := notify.NewInbox(cfg.Notification.InboxSize)
	notificationWorker := worker.NewNotificationWorker(notifications, notify.MultiSink{notify.NewLogSink(), inbox})
	notifier := notify.NewQueueNotifier(notifications)

	apiClient := client.NewEventClient(client.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	sessions := service.NewSessionManager(func(token string) service.GuestAPI {
		return apiClient.WithToken(token)
	}, notifier, cfg.API.Timeout)
	eventService := service.NewEventService(func(token string) service.EventAPI {
		return apiClient.WithToken(token)
	}, notifier)

	sessionStore := cache.NewRedisSessionStore(rdb)

	router := gin.New()
	router.ContextWithFallback = true
	router.Use(gin.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	handler.NewAuthHandler(sessionStore, sessions, cfg.Session.TTL).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router, sessionStore)
	handler.NewGuestHandler(sessions, inbox).RegisterRoutes(router, sessionStore)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return notificationWorker.Run(gctx)
	})
	g.Go(func() error {
		return sessions.RunSweeper(gctx, sessionSweepInterval, cfg.Session.TTL)
	})
	g.Go(func() error {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		return
	}
	log.Info("Server stopped")
}

// newNotificationQueue NOTIFICATION_QUEUE=redis 時多個實例共用同一個 stream
func newNotificationQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.NotificationQueue, error) {
	if cfg.Notification.Queue == "redis" {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			hostname = uuid.NewString()
		}
		return queue.NewRedisStreamNotificationQueue(ctx, rdb, hostname, nil)
	}
	return queue.NewNotificationQueue(cfg.Notification.Buffer), nil
}
