package main

import (
	"context"
	"log"
	"time"

	"github.com/linkmirror/linkmirror/pkg/db"
)

// cmd/linkmirrord/cleaner.go

const cleanupInterval = 24 * time.Hour

// snapshotCleaner prunes snapshot rows older than the retention period,
// once at startup and then daily. Current-state rows are never touched.
type snapshotCleaner struct {
	store     db.Service
	retention time.Duration
}

func newSnapshotCleaner(store db.Service, retention time.Duration) *snapshotCleaner {
	return &snapshotCleaner{store: store, retention: retention}
}

func (c *snapshotCleaner) Start(ctx context.Context) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	c.clean()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.clean()
		}
	}
}

func (c *snapshotCleaner) Stop(context.Context) error {
	return nil
}

func (c *snapshotCleaner) clean() {
	if err := c.store.CleanOldSnapshots(c.retention); err != nil {
		log.Printf("Error cleaning old snapshots: %v", err)
		return
	}

	log.Printf("Cleaned snapshots older than %v", c.retention)
}
