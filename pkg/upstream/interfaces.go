// Package upstream pkg/upstream/interfaces.go
package upstream

import "context"

//go:generate mockgen -destination=mock_upstream.go -package=upstream github.com/linkmirror/linkmirror/pkg/upstream Transport

// Appliance API endpoints.
const (
	EndpointUser       = "/user"
	EndpointWan        = "/wan"
	EndpointLan        = "/lan"
	EndpointInterface  = "/interface"
	EndpointWanUsage   = "/wanusage"
	EndpointLanUsage   = "/lanusage"
	EndpointUsage      = "/usage"
	EndpointAutocredit = "/autocredit"
)

// Transport is the HTTP capability poll loops and orchestrators are built
// on. Fetch is the polling path: it records the outcome in the failure
// tracker and never fast-fails. The one-shot methods refuse to attempt a
// call while the appliance is marked unavailable, returning a nil payload
// immediately; otherwise their errors propagate to the caller.
type Transport interface {
	Fetch(ctx context.Context, endpoint string) ([]byte, error)
	Get(ctx context.Context, endpoint string) ([]byte, error)
	Post(ctx context.Context, endpoint string, body []byte) ([]byte, error)
	Put(ctx context.Context, endpoint string, body []byte) ([]byte, error)
	Delete(ctx context.Context, endpoint string) ([]byte, error)
}
