// Package sync pkg/sync/errors.go
package sync

import "errors"

var (
	// ErrUnknownResource is returned by the façade methods when the
	// requested resource type does not exist.
	ErrUnknownResource = errors.New("unknown resource type")

	// ErrAlreadyStarted is returned by Start on a running service.
	ErrAlreadyStarted = errors.New("sync service already started")

	errDecodePayload = errors.New("failed to decode payload")
)
