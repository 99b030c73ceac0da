package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/linkmirror/linkmirror/pkg/api"
	"github.com/linkmirror/linkmirror/pkg/config"
	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/lifecycle"
	"github.com/linkmirror/linkmirror/pkg/sync"
	"github.com/linkmirror/linkmirror/pkg/upstream"
)

// cmd/linkmirrord/main.go

const defaultRetention = 400 * 24 * time.Hour

func main() {
	configPath := flag.String("config", "/etc/linkmirror/linkmirrord.json", "Path to config file")
	flag.Parse()

	var cfg config.MirrorConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	tracker := upstream.NewFailureTracker(upstream.DefaultMaxConsecutiveFailures)
	client := upstream.NewClient(upstream.ClientOptions{
		BaseURL:        cfg.Upstream.BaseURL,
		APIKey:         cfg.Upstream.APIKey,
		RequestTimeout: time.Duration(cfg.Upstream.RequestTimeout),
		RatePerSecond:  cfg.Upstream.RatePerSecond,
	}, tracker, nil)

	engine := sync.NewService(store, client, tracker, &cfg, nil)
	server := api.NewServer(cfg.ListenAddr, engine, store, nil)

	retention := time.Duration(cfg.Retention)
	if retention <= 0 {
		retention = defaultRetention
	}

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ServiceName: "linkmirrord",
		Services: []lifecycle.Service{
			engine,
			newSnapshotCleaner(store, retention),
			server,
		},
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
