// Package sync pkg/sync/interfaces.go
package sync

import (
	"context"
	"time"

	"github.com/linkmirror/linkmirror/pkg/models"
)

//go:generate mockgen -destination=mock_sync.go -package=sync github.com/linkmirror/linkmirror/pkg/sync Manager

// ResourceStatus is the per-resource slice of a status report.
type ResourceStatus struct {
	Resource            models.ResourceType `json:"resource"`
	Endpoint            string              `json:"endpoint"`
	Polling             bool                `json:"polling"`
	ConsecutiveFailures int                 `json:"consecutive_failures"`
	LastSync            time.Time           `json:"last_sync,omitempty"`
	LastCount           int                 `json:"last_count"`
	LastError           string              `json:"last_error,omitempty"`
}

// StatusReport is the full mirror status served to operators.
type StatusReport struct {
	ServiceAvailable bool             `json:"service_available"`
	Resources        []ResourceStatus `json:"resources"`
}

// Manager is the sync engine surface consumed by the API layer.
type Manager interface {
	// Start launches all poll loops. Stop halts them; the service can not
	// be restarted afterwards.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// ForceSync performs one immediate fetch-and-store cycle for the given
	// resource, outside the polling cadence. It returns the number of items
	// stored and the raw appliance payload. While the appliance is marked
	// unavailable it returns upstream.ErrServiceUnavailable without
	// attempting a call.
	ForceSync(ctx context.Context, resource models.ResourceType) (int, []byte, error)

	// RestartPollingIfStopped resumes a poll loop that stopped at the
	// failure threshold, resetting its failure count. It reports whether a
	// restart actually occurred; a running loop is left alone.
	RestartPollingIfStopped(ctx context.Context, resource models.ResourceType) (bool, error)

	// Status reports appliance availability and per-resource sync state.
	Status() StatusReport

	// Events returns the stream of per-cycle sync outcomes.
	Events() <-chan models.SyncEvent

	// FetchUserDailyUsage retrieves one user's dated usage records from the
	// appliance, filtered to actual-consumption entries, along with their
	// summed positive deltas.
	FetchUserDailyUsage(ctx context.Context, userID string) ([]models.UpstreamUserUsage, int64, error)
}
