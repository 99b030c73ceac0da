// Package models pkg/models/resources.go holds the mirrored resource rows
// and the enumerations shared between the sync and storage layers.
package models

import (
	"errors"
	"time"
)

// ErrUnknownDHCPStatus is returned when the appliance reports a DHCP status
// we have no mapping for. There is no safe default for DHCP, so the mapping
// fails instead of guessing.
var ErrUnknownDHCPStatus = errors.New("unknown dhcp status")

// ResourceType identifies one synchronized resource family.
type ResourceType string

const (
	ResourceUser       ResourceType = "user"
	ResourceWan        ResourceType = "wan"
	ResourceLan        ResourceType = "lan"
	ResourceInterface  ResourceType = "interface"
	ResourceWanUsage   ResourceType = "wanusage"
	ResourceLanUsage   ResourceType = "lanusage"
	ResourceAutocredit ResourceType = "autocredit"
)

// ResourceTypes lists every resource family in sync order.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceUser,
		ResourceWan,
		ResourceLan,
		ResourceInterface,
		ResourceWanUsage,
		ResourceLanUsage,
		ResourceAutocredit,
	}
}

// UserStatus is the local access status for a mirrored user.
type UserStatus string

const (
	UserEnabled  UserStatus = "enabled"
	UserDisabled UserStatus = "disabled"
	UserExpired  UserStatus = "expired"
)

// WanStatus is the local link status for a mirrored WAN.
type WanStatus string

const (
	WanUp      WanStatus = "up"
	WanDown    WanStatus = "down"
	WanStandby WanStatus = "standby"
)

// DHCPStatus describes how a LAN hands out addresses.
type DHCPStatus string

const (
	DHCPServer   DHCPStatus = "server"
	DHCPRelay    DHCPStatus = "relay"
	DHCPDisabled DHCPStatus = "disabled"
)

// InterfaceKind classifies a physical or virtual network interface.
type InterfaceKind string

const (
	InterfaceEthernet InterfaceKind = "ethernet"
	InterfaceWireless InterfaceKind = "wireless"
	InterfaceBridge   InterfaceKind = "bridge"
	InterfaceVLAN     InterfaceKind = "vlan"
	InterfaceOther    InterfaceKind = "other"
)

// AutocreditInterval is how often the appliance tops a user's credit up.
type AutocreditInterval string

const (
	AutocreditDaily   AutocreditInterval = "daily"
	AutocreditWeekly  AutocreditInterval = "weekly"
	AutocreditMonthly AutocreditInterval = "monthly"
)

// AutocreditType says which credit counter the top-up applies to.
type AutocreditType string

const (
	AutocreditData AutocreditType = "data"
	AutocreditTime AutocreditType = "time"
)

// User is the current mirrored state of one appliance user. All counter
// fields are raw appliance units (bytes for data, seconds for time).
type User struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Status             UserStatus         `json:"status"`
	DataCredit         int64              `json:"data_credit"`
	TimeCredit         int64              `json:"time_credit"`
	UsageDebit         int64              `json:"usage_debit"`
	UsageCredit        int64              `json:"usage_credit"`
	UsageQuota         int64              `json:"usage_quota"`
	AutocreditValue    int64              `json:"autocredit_value"`
	AutocreditInterval AutocreditInterval `json:"autocredit_interval"`
	AutocreditType     AutocreditType     `json:"autocredit_type"`
	AutocreditEnabled  bool               `json:"autocredit_enabled"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Wan is the current mirrored state of one WAN link.
type Wan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    WanStatus `json:"status"`
	Bytes     int64     `json:"bytes"`
	MaxBytes  int64     `json:"max_bytes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lan is the current mirrored state of one LAN segment. InterfaceID is
// empty when the referenced interface has not been mirrored yet; WanID is
// the WAN the segment is currently routed through and may change between
// snapshots.
type Lan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	InterfaceID string     `json:"interface_id,omitempty"`
	WanID       string     `json:"wan_id,omitempty"`
	DHCP        DHCPStatus `json:"dhcp"`
	Bytes       int64      `json:"bytes"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NetworkInterface is the current mirrored state of one appliance interface.
type NetworkInterface struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      InterfaceKind `json:"kind"`
	HWAddress string        `json:"hw_address,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}
