// Package sync pkg/sync/service.go coordinates the appliance mirror: one
// orchestrator per resource family, a manual-sync façade, and the event
// stream the API serves to subscribers.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	stdsync "sync"
	"time"

	"github.com/samber/lo"

	"github.com/linkmirror/linkmirror/pkg/config"
	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/models"
	"github.com/linkmirror/linkmirror/pkg/upstream"
	"github.com/linkmirror/linkmirror/pkg/usage"
)

const (
	defaultUsageDays  = 7
	eventBufferSize   = 64
	defaultInterval   = time.Minute
	usageSyncInterval = 5 * time.Minute
	referencedDelay   = 15 * time.Second
	usageStartupDelay = 30 * time.Second
)

type cadence struct {
	interval time.Duration
	delay    time.Duration
}

// defaultCadence staggers resource families so rows land after the rows
// they reference: LANs after interfaces and WANs, usage after its resource,
// autocredit after users.
var defaultCadence = map[models.ResourceType]cadence{
	models.ResourceUser:       {interval: defaultInterval},
	models.ResourceWan:        {interval: defaultInterval},
	models.ResourceInterface:  {interval: defaultInterval},
	models.ResourceLan:        {interval: defaultInterval, delay: referencedDelay},
	models.ResourceAutocredit: {interval: usageSyncInterval, delay: referencedDelay},
	models.ResourceWanUsage:   {interval: usageSyncInterval, delay: usageStartupDelay},
	models.ResourceLanUsage:   {interval: usageSyncInterval, delay: usageStartupDelay},
}

// Service mirrors the appliance into local storage. It implements Manager.
type Service struct {
	db        db.Service
	transport upstream.Transport
	tracker   *upstream.FailureTracker
	logger    *log.Logger
	usageDays int

	mu            stdsync.RWMutex
	orchestrators map[models.ResourceType]*orchestrator
	lastEvents    map[models.ResourceType]models.SyncEvent
	events        chan models.SyncEvent
	started       bool
	cancel        context.CancelFunc
	wg            stdsync.WaitGroup
}

// NewService builds the sync engine from the daemon configuration. Cadence
// overrides in cfg.Endpoints are applied per resource type; everything else
// uses the defaults.
func NewService(store db.Service, transport upstream.Transport, tracker *upstream.FailureTracker,
	cfg *config.MirrorConfig, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	usageDays := cfg.Upstream.UsageDays
	if usageDays <= 0 {
		usageDays = defaultUsageDays
	}

	s := &Service{
		db:            store,
		transport:     transport,
		tracker:       tracker,
		logger:        logger,
		usageDays:     usageDays,
		orchestrators: make(map[models.ResourceType]*orchestrator),
		lastEvents:    make(map[models.ResourceType]models.SyncEvent),
		events:        make(chan models.SyncEvent, eventBufferSize),
	}

	applies := map[models.ResourceType]applyFunc{
		models.ResourceUser:       s.applyUsers,
		models.ResourceWan:        s.applyWans,
		models.ResourceLan:        s.applyLans,
		models.ResourceInterface:  s.applyInterfaces,
		models.ResourceWanUsage:   s.applyWanUsage,
		models.ResourceLanUsage:   s.applyLanUsage,
		models.ResourceAutocredit: s.applyAutocredits,
	}

	for _, resource := range models.ResourceTypes() {
		cad := defaultCadence[resource]
		if override, ok := cfg.Endpoints[string(resource)]; ok {
			if d := time.Duration(override.Interval); d > 0 {
				cad.interval = d
			}
			if d := time.Duration(override.StartupDelay); d > 0 {
				cad.delay = d
			}
		}

		endpoint := s.endpointFor(resource)

		s.orchestrators[resource] = &orchestrator{
			resource: resource,
			endpoint: endpoint,
			delay:    cad.delay,
			loop:     upstream.NewPollLoop(transport, tracker, endpoint, cad.interval, logger),
			apply:    applies[resource],
		}
	}

	return s
}

// endpointFor maps a resource type onto its appliance endpoint, including
// the days window for the usage endpoints.
func (s *Service) endpointFor(resource models.ResourceType) string {
	switch resource {
	case models.ResourceUser:
		return upstream.EndpointUser
	case models.ResourceWan:
		return upstream.EndpointWan
	case models.ResourceLan:
		return upstream.EndpointLan
	case models.ResourceInterface:
		return upstream.EndpointInterface
	case models.ResourceWanUsage:
		return fmt.Sprintf("%s?days=%d", upstream.EndpointWanUsage, s.usageDays)
	case models.ResourceLanUsage:
		return fmt.Sprintf("%s?days=%d", upstream.EndpointLanUsage, s.usageDays)
	case models.ResourceAutocredit:
		return upstream.EndpointAutocredit
	default:
		return ""
	}
}

// Start launches one orchestrator per resource family.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = true

	for _, o := range s.orchestrators {
		s.wg.Add(1)
		go s.run(runCtx, o)
	}

	s.logger.Printf("Sync service started with %d resource orchestrators", len(s.orchestrators))

	return nil
}

// Stop halts polling and waits for the orchestrators to drain, bounded by
// the context.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()

	if !s.started {
		s.mu.Unlock()
		return nil
	}

	s.started = false
	s.cancel()
	s.mu.Unlock()

	for _, o := range s.orchestrators {
		o.loop.Stop()
	}

	done := make(chan struct{})

	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Printf("Sync service stopped")

	return nil
}

// ForceSync performs one immediate fetch-and-store cycle outside the
// polling cadence. The one-shot transport path fast-fails with a nil
// payload while the appliance is marked unavailable; that surfaces here as
// upstream.ErrServiceUnavailable.
func (s *Service) ForceSync(ctx context.Context, resource models.ResourceType) (int, []byte, error) {
	o, ok := s.orchestrators[resource]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	payload, err := s.transport.Get(ctx, o.endpoint)
	if err != nil {
		s.record(resource, 0, err.Error())
		return 0, nil, err
	}

	if payload == nil {
		return 0, nil, fmt.Errorf("%w: %s", upstream.ErrServiceUnavailable, o.endpoint)
	}

	count, err := o.apply(payload)
	if err != nil {
		s.record(resource, count, err.Error())
		return count, payload, err
	}

	s.logger.Printf("Force-synced %d %s items", count, resource)
	s.record(resource, count, "")

	return count, payload, nil
}

// RestartPollingIfStopped resumes a loop that tripped the failure
// threshold. A loop that is still running is left alone and false is
// returned.
func (s *Service) RestartPollingIfStopped(ctx context.Context, resource models.ResourceType) (bool, error) {
	o, ok := s.orchestrators[resource]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	return o.loop.Restart(ctx), nil
}

// Status reports appliance availability and the last sync outcome for every
// resource family.
func (s *Service) Status() StatusReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := lo.Map(models.ResourceTypes(), func(resource models.ResourceType, _ int) ResourceStatus {
		o := s.orchestrators[resource]
		last := s.lastEvents[resource]

		return ResourceStatus{
			Resource:            resource,
			Endpoint:            o.endpoint,
			Polling:             o.loop.Running(),
			ConsecutiveFailures: s.tracker.ConsecutiveFailures(o.endpoint),
			LastSync:            last.At,
			LastCount:           last.Count,
			LastError:           last.Error,
		}
	})

	return StatusReport{
		ServiceAvailable: s.tracker.ServiceAvailable(),
		Resources:        resources,
	}
}

// Events returns the stream of per-cycle sync outcomes.
func (s *Service) Events() <-chan models.SyncEvent {
	return s.events
}

// FetchUserDailyUsage retrieves one user's dated usage records from the
// appliance, keeping only actual-consumption entries, and sums their
// positive deltas.
func (s *Service) FetchUserDailyUsage(ctx context.Context, userID string) ([]models.UpstreamUserUsage, int64, error) {
	endpoint := fmt.Sprintf("%s?days=%d&userid=%s&recordtype=%d",
		upstream.EndpointUsage, s.usageDays, userID, models.ActualUsageRecordType)

	payload, err := s.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, 0, err
	}

	if payload == nil {
		return nil, 0, fmt.Errorf("%w: %s", upstream.ErrServiceUnavailable, endpoint)
	}

	var items []models.UpstreamUserUsage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: usage: %w", errDecodePayload, err)
	}

	// The appliance is asked to filter by recordtype but older firmware
	// ignores the parameter, so filter again here.
	items = lo.Filter(items, func(u models.UpstreamUserUsage, _ int) bool {
		return u.RecordType == models.ActualUsageRecordType
	})

	sort.Slice(items, func(i, j int) bool { return items[i].Date < items[j].Date })

	points := make([]usage.Point, 0, len(items))

	for i := range items {
		date, err := time.Parse(usageDateLayout, items[i].Date)
		if err != nil {
			s.logger.Printf("Warning: skipping usage record with bad date %q: %v", items[i].Date, err)
			continue
		}

		points = append(points, usage.Point{Date: date, Value: items[i].Bytes})
	}

	return items, usage.SeriesTotal(usage.Debit, points), nil
}
