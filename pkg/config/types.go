// Package config pkg/config/types.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	errInvalidDuration  = errors.New("invalid duration")
	errMissingBaseURL   = errors.New("upstream base_url is required")
	errMissingAPIKey    = errors.New("upstream api_key is required")
	errMissingDBPath    = errors.New("db_path is required")
	errMissingListen    = errors.New("listen_addr is required")
	errNegativeInterval = errors.New("poll interval must be positive")
)

// Duration is a wrapper around time.Duration for JSON unmarshaling.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UpstreamConfig holds the connection settings for the appliance API.
type UpstreamConfig struct {
	BaseURL        string   `json:"base_url"`  // e.g. https://10.0.0.1:8443/api
	APIKey         string   `json:"api_key"`   // sent as X-Api-Key
	RequestTimeout Duration `json:"timeout"`   // per-call cap, default 10s
	RatePerSecond  float64  `json:"rate"`      // upstream request pacing, default 5
	UsageDays      int      `json:"usage_days"`// days=N on usage endpoints, default 7
}

// EndpointConfig sets the poll cadence for one appliance endpoint. The
// startup delay is how long the orchestrator waits before its first tick,
// which is how foreign-key ordering between resource types is expressed.
type EndpointConfig struct {
	Interval     Duration `json:"interval"`
	StartupDelay Duration `json:"startup_delay,omitempty"`
}

// MirrorConfig is the top-level daemon configuration.
type MirrorConfig struct {
	ListenAddr string                    `json:"listen_addr"` // e.g. :8090
	DBPath     string                    `json:"db_path"`
	Upstream   UpstreamConfig            `json:"upstream"`
	Endpoints  map[string]EndpointConfig `json:"endpoints,omitempty"` // keyed by resource type
	Retention  Duration                  `json:"retention,omitempty"` // snapshot retention, default 400d
}

// Validate implements Validator.
func (c *MirrorConfig) Validate() error {
	if c.ListenAddr == "" {
		return errMissingListen
	}

	if c.DBPath == "" {
		return errMissingDBPath
	}

	if c.Upstream.BaseURL == "" {
		return errMissingBaseURL
	}

	if c.Upstream.APIKey == "" {
		return errMissingAPIKey
	}

	for name, ep := range c.Endpoints {
		if time.Duration(ep.Interval) <= 0 {
			return fmt.Errorf("%w: endpoint %s", errNegativeInterval, name)
		}
	}

	return nil
}
