package app

import (
	"context"
	"log"
	"time"

	"olilab_backend/config"
	"olilab_backend/core"
	"olilab_backend/mail"
	"olilab_backend/notify"
	"olilab_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Aliases so handlers read a little shorter.
type Ctx = gin.Context
type H = gin.H

// App aggregates the dependencies handlers need.
type App struct {
	Router *gin.Engine
	Store  store.Store
	RDB    *redis.Client
	Core   *core.Service
	Config config.Config
}

func MustNew() *App {
	cfg := config.Load()

	// --- Snapshot store: Postgres document row, or a local JSON file ---
	var (
		st  store.Store
		err error
	)
	if cfg.DatabaseURL != "" {
		st, err = store.NewPGStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres store: %v", err)
		}
	} else {
		st, err = store.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("file store: %v", err)
		}
		log.Printf("using file store at %s", cfg.DataFile)
	}

	// --- Redis (optional): notification fan-out ---
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r,
		Store:  st,
		RDB:    rdb,
		Core:   core.NewService(st, notify.NewPublisher(rdb), mail.New(), cfg.LoanPeriodDays),
		Config: cfg,
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}
