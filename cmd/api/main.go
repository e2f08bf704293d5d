package main

import (
	"context"
	"log"
	"time"

	"github.com/nio-salesdesk/salesdesk-backend/config"
	"github.com/nio-salesdesk/salesdesk-backend/internal/bootstrap"
)

const serviceName = "salesdesk-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fb, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fb.Firestore.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	app := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		Firebase:    fb,
		Redis:       rdb,
	})

	app.Sweeper.Start()
	defer app.Sweeper.Stop()

	log.Printf("%s v%s listening on :%s (%s)", serviceName, cfg.App.Version, cfg.Server.Port, cfg.App.Environment)
	if err := app.Router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
