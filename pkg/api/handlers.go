// Package api pkg/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/models"
	"github.com/linkmirror/linkmirror/pkg/sync"
	"github.com/linkmirror/linkmirror/pkg/upstream"
	"github.com/linkmirror/linkmirror/pkg/usage"
)

const windowDateLayout = "2006-01-02"

// SyncResponse is the body returned by a manual sync.
type SyncResponse struct {
	Resource models.ResourceType `json:"resource"`
	Count    int                 `json:"count"`
	Items    json.RawMessage     `json:"items"`
}

// RestartResponse is the body returned by a polling restart request. The
// call succeeds with restarted=false when the loop was still running.
type RestartResponse struct {
	Resource  models.ResourceType `json:"resource"`
	Restarted bool                `json:"restarted"`
	Message   string              `json:"message"`
}

// UsageResponse wraps a derived usage figure with the window it covers.
type UsageResponse struct {
	ID    string      `json:"id"`
	Start string      `json:"start"`
	End   string      `json:"end"`
	Usage interface{} `json:"usage"`
}

// DailyUsageResponse is the body for per-user fine-grained usage.
type DailyUsageResponse struct {
	UserID  string                     `json:"user_id"`
	Records []models.UpstreamUserUsage `json:"records"`
	Total   int64                      `json:"total"`
}

func (s *APIServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("Error encoding response: %v", err)
	}
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.manager.Status())
}

func (s *APIServer) forceSync(w http.ResponseWriter, r *http.Request) {
	resource := models.ResourceType(mux.Vars(r)["resource"])

	count, items, err := s.manager.ForceSync(r.Context(), resource)

	switch {
	case errors.Is(err, sync.ErrUnknownResource):
		http.Error(w, "Unknown resource", http.StatusNotFound)
		return
	case errors.Is(err, upstream.ErrServiceUnavailable):
		http.Error(w, "Appliance unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		s.logger.Printf("Error force-syncing %s: %v", resource, err)
		http.Error(w, "Sync failed", http.StatusBadGateway)

		return
	}

	s.writeJSON(w, http.StatusOK, SyncResponse{
		Resource: resource,
		Count:    count,
		Items:    items,
	})
}

func (s *APIServer) restartPolling(w http.ResponseWriter, r *http.Request) {
	resource := models.ResourceType(mux.Vars(r)["resource"])

	restarted, err := s.manager.RestartPollingIfStopped(r.Context(), resource)
	if err != nil {
		http.Error(w, "Unknown resource", http.StatusNotFound)
		return
	}

	message := "polling already running"
	if restarted {
		message = "polling restarted"
	}

	s.writeJSON(w, http.StatusOK, RestartResponse{
		Resource:  resource,
		Restarted: restarted,
		Message:   message,
	})
}

func (s *APIServer) getUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := s.store.ListUsers()
	if err != nil {
		s.logger.Printf("Error listing users: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, users)
}

func (s *APIServer) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(mux.Vars(r)["id"])
	if err != nil {
		s.notFoundOrError(w, "User", err)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *APIServer) getWans(w http.ResponseWriter, _ *http.Request) {
	wans, err := s.store.ListWans()
	if err != nil {
		s.logger.Printf("Error listing wans: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, wans)
}

func (s *APIServer) getWan(w http.ResponseWriter, r *http.Request) {
	wan, err := s.store.GetWan(mux.Vars(r)["id"])
	if err != nil {
		s.notFoundOrError(w, "WAN", err)
		return
	}

	s.writeJSON(w, http.StatusOK, wan)
}

func (s *APIServer) getLans(w http.ResponseWriter, _ *http.Request) {
	lans, err := s.store.ListLans()
	if err != nil {
		s.logger.Printf("Error listing lans: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, lans)
}

func (s *APIServer) getLan(w http.ResponseWriter, r *http.Request) {
	lan, err := s.store.GetLan(mux.Vars(r)["id"])
	if err != nil {
		s.notFoundOrError(w, "LAN", err)
		return
	}

	s.writeJSON(w, http.StatusOK, lan)
}

func (s *APIServer) getInterfaces(w http.ResponseWriter, _ *http.Request) {
	ifaces, err := s.store.ListInterfaces()
	if err != nil {
		s.logger.Printf("Error listing interfaces: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, ifaces)
}

func (s *APIServer) getInterface(w http.ResponseWriter, r *http.Request) {
	iface, err := s.store.GetInterface(mux.Vars(r)["id"])
	if err != nil {
		s.notFoundOrError(w, "Interface", err)
		return
	}

	s.writeJSON(w, http.StatusOK, iface)
}

func (s *APIServer) notFoundOrError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, what+" not found", http.StatusNotFound)
		return
	}

	s.logger.Printf("Error loading %s: %v", what, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// resourceExists gates the usage handlers on a mirrored row without loading
// it. A false return means the response has already been written.
func (s *APIServer) resourceExists(w http.ResponseWriter, what, id string, exists func(string) (bool, error)) bool {
	ok, err := exists(id)
	if err != nil {
		s.logger.Printf("Error checking %s %s: %v", what, id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return false
	}

	if !ok {
		http.Error(w, what+" not found", http.StatusNotFound)
		return false
	}

	return true
}

// parseWindow reads optional start and end query parameters (YYYY-MM-DD).
// When neither is given the window runs from the first of the current
// month through today.
func parseWindow(r *http.Request) (usage.Window, error) {
	w := usage.MonthWindow(time.Now())

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err := time.Parse(windowDateLayout, raw)
		if err != nil {
			return usage.Window{}, err
		}

		w.Start = start
	}

	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err := time.Parse(windowDateLayout, raw)
		if err != nil {
			return usage.Window{}, err
		}

		w.End = end
	}

	return w, nil
}

func (s *APIServer) getUserUsage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, "Invalid window, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if !s.resourceExists(w, "User", id, s.store.UserExists) {
		return
	}

	from, to := window.DayBounds()

	snaps, err := s.store.GetUserSnapshots(id, from, to)
	if err != nil {
		s.logger.Printf("Error loading snapshots for user %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, UsageResponse{
		ID:    id,
		Start: window.Start.Format(windowDateLayout),
		End:   window.End.Format(windowDateLayout),
		Usage: usage.ForUser(snaps, window),
	})
}

func (s *APIServer) getWanUsage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, "Invalid window, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if !s.resourceExists(w, "WAN", id, s.store.WanExists) {
		return
	}

	from, to := window.DayBounds()

	snaps, err := s.store.GetWanSnapshots(id, from, to)
	if err != nil {
		s.logger.Printf("Error loading snapshots for wan %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, UsageResponse{
		ID:    id,
		Start: window.Start.Format(windowDateLayout),
		End:   window.End.Format(windowDateLayout),
		Usage: usage.ForWan(snaps, window),
	})
}

func (s *APIServer) getLanUsage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, "Invalid window, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if !s.resourceExists(w, "LAN", id, s.store.LanExists) {
		return
	}

	from, to := window.DayBounds()

	snaps, err := s.store.GetLanSnapshots(id, from, to)
	if err != nil {
		s.logger.Printf("Error loading snapshots for lan %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, UsageResponse{
		ID:    id,
		Start: window.Start.Format(windowDateLayout),
		End:   window.End.Format(windowDateLayout),
		Usage: usage.ForLan(snaps, window),
	})
}

func (s *APIServer) getUserDailyUsage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	records, total, err := s.manager.FetchUserDailyUsage(r.Context(), id)
	if errors.Is(err, upstream.ErrServiceUnavailable) {
		http.Error(w, "Appliance unavailable", http.StatusServiceUnavailable)
		return
	} else if err != nil {
		s.logger.Printf("Error fetching daily usage for user %s: %v", id, err)
		http.Error(w, "Upstream error", http.StatusBadGateway)

		return
	}

	s.writeJSON(w, http.StatusOK, DailyUsageResponse{
		UserID:  id,
		Records: records,
		Total:   total,
	})
}
