// Package sync pkg/sync/syncers.go holds the per-resource apply functions:
// decode one appliance payload, map it onto local rows, and store it. A bad
// item is logged and skipped; the rest of the batch still lands.
package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/models"
)

const usageDateLayout = "2006-01-02"

func (s *Service) applyUsers(payload []byte) (int, error) {
	var items []models.UpstreamUser
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: user: %w", errDecodePayload, err)
	}

	items = lo.Filter(items, func(u models.UpstreamUser, _ int) bool {
		if u.ID == "" {
			s.logger.Printf("Warning: skipping user with empty id")
			return false
		}
		return true
	})

	now := time.Now()
	count := 0

	for i := range items {
		item := &items[i]

		user := &models.User{
			ID:          item.ID,
			Name:        item.Name,
			Status:      mapUserStatus(item.Status, s.logger),
			DataCredit:  item.DataCredit,
			TimeCredit:  item.TimeCredit,
			UsageDebit:  item.UsageDebit,
			UsageCredit: item.UsageCredit,
			UsageQuota:  item.UsageQuota,
			UpdatedAt:   now,
		}

		if err := s.db.UpsertUser(user); err != nil {
			s.logger.Printf("Error storing user %s: %v", item.ID, err)
			continue
		}

		if err := s.snapshotUser(item.ID, now); err != nil {
			s.logger.Printf("Error snapshotting user %s: %v", item.ID, err)
			continue
		}

		count++
	}

	return count, nil
}

// snapshotUser copies the stored user row into today's snapshot. Reading
// the row back rather than the payload keeps the snapshot consistent when
// the user and autocredit endpoints land in either order.
func (s *Service) snapshotUser(userID string, at time.Time) error {
	stored, err := s.db.GetUser(userID)
	if err != nil {
		return err
	}

	return s.db.UpsertUserSnapshot(&models.UserSnapshot{
		UserID:          userID,
		SnapshotDate:    at,
		DataCredit:      stored.DataCredit,
		TimeCredit:      stored.TimeCredit,
		AutocreditValue: stored.AutocreditValue,
		UsageDebit:      stored.UsageDebit,
		UsageCredit:     stored.UsageCredit,
		UsageQuota:      stored.UsageQuota,
	})
}

func (s *Service) applyAutocredits(payload []byte) (int, error) {
	var items []models.UpstreamAutocredit
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: autocredit: %w", errDecodePayload, err)
	}

	now := time.Now()
	count := 0

	for i := range items {
		item := &items[i]

		if item.UserID == "" {
			s.logger.Printf("Warning: skipping autocredit with empty userid")
			continue
		}

		err := s.db.UpdateUserAutocredit(item.UserID, item.Value,
			mapAutocreditInterval(item.Interval, s.logger),
			mapAutocreditType(item.Type, s.logger),
			mapAutocreditEnabled(item.Status, s.logger))
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Printf("Warning: autocredit for unmirrored user %s, skipping", item.UserID)
			continue
		} else if err != nil {
			s.logger.Printf("Error storing autocredit for user %s: %v", item.UserID, err)
			continue
		}

		if err := s.snapshotUser(item.UserID, now); err != nil {
			s.logger.Printf("Error snapshotting user %s: %v", item.UserID, err)
			continue
		}

		count++
	}

	return count, nil
}

func (s *Service) applyWans(payload []byte) (int, error) {
	var items []models.UpstreamWan
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: wan: %w", errDecodePayload, err)
	}

	now := time.Now()
	count := 0

	for i := range items {
		item := &items[i]

		if item.ID == "" {
			s.logger.Printf("Warning: skipping wan with empty id")
			continue
		}

		wan := &models.Wan{
			ID:        item.ID,
			Name:      item.Name,
			Status:    mapWanStatus(item.Status, s.logger),
			Bytes:     item.Bytes,
			MaxBytes:  item.MaxBytes,
			UpdatedAt: now,
		}

		if err := s.db.UpsertWan(wan); err != nil {
			s.logger.Printf("Error storing wan %s: %v", item.ID, err)
			continue
		}

		if err := s.db.UpsertWanSnapshot(&models.WanSnapshot{
			WanID:        item.ID,
			SnapshotDate: now,
			Bytes:        item.Bytes,
			MaxBytes:     item.MaxBytes,
		}); err != nil {
			s.logger.Printf("Error snapshotting wan %s: %v", item.ID, err)
			continue
		}

		count++
	}

	return count, nil
}

func (s *Service) applyInterfaces(payload []byte) (int, error) {
	var items []models.UpstreamInterface
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: interface: %w", errDecodePayload, err)
	}

	now := time.Now()
	count := 0

	for i := range items {
		item := &items[i]

		if item.ID == "" {
			s.logger.Printf("Warning: skipping interface with empty id")
			continue
		}

		iface := &models.NetworkInterface{
			ID:        item.ID,
			Name:      item.Name,
			Kind:      mapInterfaceKind(item.Type, s.logger),
			HWAddress: item.HWAddress,
			UpdatedAt: now,
		}

		if err := s.db.UpsertInterface(iface); err != nil {
			s.logger.Printf("Error storing interface %s: %v", item.ID, err)
			continue
		}

		count++
	}

	return count, nil
}

func (s *Service) applyLans(payload []byte) (int, error) {
	var items []models.UpstreamLan
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: lan: %w", errDecodePayload, err)
	}

	now := time.Now()
	count := 0

	for i := range items {
		item := &items[i]

		if item.ID == "" {
			s.logger.Printf("Warning: skipping lan with empty id")
			continue
		}

		dhcp, err := mapDHCPStatus(item.DHCPStatus)
		if err != nil {
			s.logger.Printf("Error: skipping lan %s: %v", item.ID, err)
			continue
		}

		lan := &models.Lan{
			ID:          item.ID,
			Name:        item.Name,
			InterfaceID: s.resolveRef("lan", item.ID, "interface", item.InterfaceID, s.db.InterfaceExists),
			WanID:       s.resolveRef("lan", item.ID, "wan", item.WanID, s.db.WanExists),
			DHCP:        dhcp,
			Bytes:       item.Bytes,
			UpdatedAt:   now,
		}

		if err := s.db.UpsertLan(lan); err != nil {
			s.logger.Printf("Error storing lan %s: %v", item.ID, err)
			continue
		}

		if err := s.db.UpsertLanSnapshot(&models.LanSnapshot{
			LanID:        item.ID,
			WanID:        lan.WanID,
			SnapshotDate: now,
			Bytes:        item.Bytes,
		}); err != nil {
			s.logger.Printf("Error snapshotting lan %s: %v", item.ID, err)
			continue
		}

		count++
	}

	return count, nil
}

// resolveRef returns refID when the referenced row exists, empty otherwise.
// Storing an empty link keeps the row usable until the referenced resource
// has been mirrored; the next sync cycle fills it in.
func (s *Service) resolveRef(kind, id, refKind, refID string, exists func(string) (bool, error)) string {
	if refID == "" {
		return ""
	}

	ok, err := exists(refID)
	if err != nil {
		s.logger.Printf("Error checking %s %s for %s %s: %v", refKind, refID, kind, id, err)
		return ""
	}

	if !ok {
		s.logger.Printf("Warning: %s %s references unmirrored %s %s, storing without link",
			kind, id, refKind, refID)
		return ""
	}

	return refID
}

func (s *Service) applyWanUsage(payload []byte) (int, error) {
	var items []models.UpstreamWanUsage
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: wanusage: %w", errDecodePayload, err)
	}

	count := 0

	for i := range items {
		item := &items[i]

		date, err := time.Parse(usageDateLayout, item.Date)
		if err != nil {
			s.logger.Printf("Warning: skipping wanusage with bad date %q: %v", item.Date, err)
			continue
		}

		ok, err := s.db.WanExists(item.WanID)
		if err != nil {
			s.logger.Printf("Error checking wan %s: %v", item.WanID, err)
			continue
		}

		if !ok {
			s.logger.Printf("Warning: wanusage for unmirrored wan %s, skipping", item.WanID)
			continue
		}

		if err := s.db.UpsertWanSnapshot(&models.WanSnapshot{
			WanID:        item.WanID,
			SnapshotDate: date,
			Bytes:        item.Bytes,
			MaxBytes:     item.MaxBytes,
		}); err != nil {
			s.logger.Printf("Error storing wanusage for wan %s on %s: %v", item.WanID, item.Date, err)
			continue
		}

		count++
	}

	return count, nil
}

func (s *Service) applyLanUsage(payload []byte) (int, error) {
	var items []models.UpstreamLanUsage
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, fmt.Errorf("%w: lanusage: %w", errDecodePayload, err)
	}

	count := 0

	for i := range items {
		item := &items[i]

		date, err := time.Parse(usageDateLayout, item.Date)
		if err != nil {
			s.logger.Printf("Warning: skipping lanusage with bad date %q: %v", item.Date, err)
			continue
		}

		ok, err := s.db.LanExists(item.LanID)
		if err != nil {
			s.logger.Printf("Error checking lan %s: %v", item.LanID, err)
			continue
		}

		if !ok {
			s.logger.Printf("Warning: lanusage for unmirrored lan %s, skipping", item.LanID)
			continue
		}

		if err := s.db.UpsertLanSnapshot(&models.LanSnapshot{
			LanID:        item.LanID,
			WanID:        s.resolveRef("lanusage", item.LanID, "wan", item.WanID, s.db.WanExists),
			SnapshotDate: date,
			Bytes:        item.Bytes,
		}); err != nil {
			s.logger.Printf("Error storing lanusage for lan %s on %s: %v", item.LanID, item.Date, err)
			continue
		}

		count++
	}

	return count, nil
}
