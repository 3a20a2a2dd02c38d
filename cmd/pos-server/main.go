package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/config"
	"pos-backend/internal/connections/database"
	"pos-backend/internal/connections/rabbitmq"
	"pos-backend/internal/handlers"
	"pos-backend/internal/hub"
	"pos-backend/internal/pkg/cache"
	"pos-backend/internal/repository"
	"pos-backend/internal/service"
)

func main() {
	var cfgPath string
	var port int
	flag.StringVar(&cfgPath, "config", "", "path to YAML config")
	flag.IntVar(&port, "port", 0, "override the configured HTTP port")
	flag.Parse()

	lg := logger.New("pos-server")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfgPath == "" {
		p, err := config.FindConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no config file found; pass -config")
			os.Exit(2)
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": cfgPath})
		os.Exit(1)
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		lg.Error("db_open_failed", err, map[string]any{"path": cfg.Database.Path})
		os.Exit(1)
	}
	defer db.Close()
	if err := database.Seed(ctx, db); err != nil {
		lg.Error("db_seed_failed", err, nil)
		os.Exit(1)
	}
	lg.Info("db_ready", map[string]any{"path": cfg.Database.Path})

	var c cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.NewRedisCache(cfg.Redis.Addr, "pos")
		lg.Info("cache_enabled", map[string]any{"addr": cfg.Redis.Addr})
	}

	h := hub.New(logger.New("hub"))
	defer h.Close()

	bc := service.MultiBroadcaster{h}
	if cfg.Rabbit.Host != "" {
		relay, err := rabbitmq.Dial(rabbitmq.Config{
			Host: cfg.Rabbit.Host, Port: cfg.Rabbit.Port,
			User: cfg.Rabbit.User, Password: cfg.Rabbit.Password, VHost: cfg.Rabbit.VHost,
		}, logger.New("relay"))
		if err != nil {
			lg.Error("rabbitmq_connect_failed", err, map[string]any{"host": cfg.Rabbit.Host})
			os.Exit(1)
		}
		if err := relay.Ping(); err != nil {
			lg.Error("rabbitmq_ping_failed", err, map[string]any{"host": cfg.Rabbit.Host})
			os.Exit(1)
		}
		defer relay.Close()
		bc = append(bc, relay)
		lg.Info("relay_enabled", map[string]any{"host": cfg.Rabbit.Host})
	}

	svc := service.New(repository.New(db), bc, c, logger.New("service"))
	handler := handlers.New(svc, h, logger.New("http"))
	srv := handlers.NewServer(":"+strconv.Itoa(cfg.Server.Port), handlers.Router(handler),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)

	lg.Info("service_started", map[string]any{"port": cfg.Server.Port})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if err := g.Wait(); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("shutdown_complete", nil)
}
