// Package sync pkg/sync/mappers.go maps appliance enumerations onto local
// ones. Unknown values fall back to a documented default with a warning;
// the one exception is DHCP status, where no sane default exists and the
// mapping fails instead.
package sync

import (
	"fmt"
	"log"

	"github.com/linkmirror/linkmirror/pkg/models"
)

func mapUserStatus(raw string, logger *log.Logger) models.UserStatus {
	switch raw {
	case "enabled", "active":
		return models.UserEnabled
	case "disabled", "blocked":
		return models.UserDisabled
	case "expired":
		return models.UserExpired
	default:
		// Known unknowns default to disabled: a user we cannot classify
		// should not look billable.
		logger.Printf("Warning: unknown user status %q, defaulting to disabled", raw)
		return models.UserDisabled
	}
}

func mapWanStatus(raw string, logger *log.Logger) models.WanStatus {
	switch raw {
	case "up", "connected":
		return models.WanUp
	case "down", "disconnected":
		return models.WanDown
	case "standby", "backup":
		return models.WanStandby
	default:
		logger.Printf("Warning: unknown wan status %q, defaulting to down", raw)
		return models.WanDown
	}
}

func mapDHCPStatus(raw string) (models.DHCPStatus, error) {
	switch raw {
	case "server", "enabled":
		return models.DHCPServer, nil
	case "relay":
		return models.DHCPRelay, nil
	case "disabled", "none":
		return models.DHCPDisabled, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownDHCPStatus, raw)
	}
}

func mapInterfaceKind(raw string, logger *log.Logger) models.InterfaceKind {
	switch raw {
	case "ether", "ethernet":
		return models.InterfaceEthernet
	case "wlan", "wireless":
		return models.InterfaceWireless
	case "bridge":
		return models.InterfaceBridge
	case "vlan":
		return models.InterfaceVLAN
	default:
		logger.Printf("Warning: unknown interface type %q, defaulting to other", raw)
		return models.InterfaceOther
	}
}

func mapAutocreditInterval(raw string, logger *log.Logger) models.AutocreditInterval {
	switch raw {
	case "daily":
		return models.AutocreditDaily
	case "weekly":
		return models.AutocreditWeekly
	case "monthly":
		return models.AutocreditMonthly
	default:
		logger.Printf("Warning: unknown autocredit interval %q, defaulting to monthly", raw)
		return models.AutocreditMonthly
	}
}

func mapAutocreditType(raw string, logger *log.Logger) models.AutocreditType {
	switch raw {
	case "data":
		return models.AutocreditData
	case "time":
		return models.AutocreditTime
	default:
		logger.Printf("Warning: unknown autocredit type %q, defaulting to data", raw)
		return models.AutocreditData
	}
}

func mapAutocreditEnabled(raw string, logger *log.Logger) bool {
	switch raw {
	case "enabled", "on":
		return true
	case "disabled", "off":
		return false
	default:
		logger.Printf("Warning: unknown autocredit status %q, treating as disabled", raw)
		return false
	}
}
