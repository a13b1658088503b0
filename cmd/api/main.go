package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"

	"github.com/studiofade/barber-manager/internal/audit"
	"github.com/studiofade/barber-manager/internal/config"
	dbpkg "github.com/studiofade/barber-manager/internal/db"
	"github.com/studiofade/barber-manager/internal/plans"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/routes"
	"github.com/studiofade/barber-manager/internal/timer"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx := context.Background()

	// ------------------------------
	// Timer side-store (Redis)
	// ------------------------------
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}
	tracker := timer.NewTracker(timer.NewRedisStore(redisClient), nil)

	// ------------------------------
	// Snapshot em memória: push (LISTEN/NOTIFY) + poll de segurança
	// ------------------------------
	notifier := refresh.NewNotifier()
	refresher := refresh.NewRefresher(db, notifier)
	listener := refresh.NewListener(cfg.DBUrl, notifier)

	go listener.Run(ctx)
	go refresher.Run(ctx)

	// ------------------------------
	// Cron: poll de invalidação + renovação de planos mensais
	// ------------------------------
	c := cron.New()
	if _, err := c.AddFunc(cfg.PollSpec, notifier.Invalidate); err != nil {
		log.Fatalf("invalid poll spec %q: %v", cfg.PollSpec, err)
	}

	renewal := plans.NewRenewalService(db, audit.NewDispatcher(audit.New(db)))
	if err := renewal.Register(c); err != nil {
		log.Fatalf("registering plan renewal job: %v", err)
	}
	c.Start()

	// ------------------------------
	// HTTP
	// ------------------------------
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tracker, refresher, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
