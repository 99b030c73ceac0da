// Package models pkg/models/upstream.go defines the wire shapes returned
// by the appliance HTTP API.
package models

// UpstreamUser is one element of the /user response.
type UpstreamUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DataCredit  int64  `json:"datacredit"`
	TimeCredit  int64  `json:"timecredit"`
	UsageDebit  int64  `json:"usagedebit"`
	UsageCredit int64  `json:"usagecredit"`
	UsageQuota  int64  `json:"usagequota"`
}

// UpstreamAutocredit is one element of the /autocredit response, the
// appliance's per-user top-up policy.
type UpstreamAutocredit struct {
	UserID   string `json:"userid"`
	Interval string `json:"interval"`
	Type     string `json:"type"`
	Value    int64  `json:"value"`
	Status   string `json:"status"`
}

// UpstreamWan is one element of the /wan response.
type UpstreamWan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Bytes    int64  `json:"bytes"`
	MaxBytes int64  `json:"maxbytes"`
}

// UpstreamLan is one element of the /lan response.
type UpstreamLan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	InterfaceID string `json:"interfaceid"`
	WanID       string `json:"wanid"`
	DHCPStatus  string `json:"dhcpstatus"`
	Bytes       int64  `json:"bytes"`
}

// UpstreamInterface is one element of the /interface response.
type UpstreamInterface struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	HWAddress string `json:"hwaddress"`
}

// UpstreamWanUsage is one element of /wanusage?days=N, a dated byte
// counter reading for one WAN.
type UpstreamWanUsage struct {
	WanID    string `json:"wanid"`
	Date     string `json:"date"` // YYYY-MM-DD
	Bytes    int64  `json:"bytes"`
	MaxBytes int64  `json:"maxbytes"`
}

// UpstreamLanUsage is one element of /lanusage?days=N.
type UpstreamLanUsage struct {
	LanID string `json:"lanid"`
	WanID string `json:"wanid"`
	Date  string `json:"date"`
	Bytes int64  `json:"bytes"`
}

// UpstreamUserUsage is one element of /usage?days=N&userid=ID. RecordType 2
// marks actual usage records; other types are appliance bookkeeping.
type UpstreamUserUsage struct {
	UserID     string `json:"userid"`
	Date       string `json:"date"`
	Bytes      int64  `json:"bytes"`
	RecordType int    `json:"recordtype"`
}

// ActualUsageRecordType is the /usage recordtype value for real consumption.
const ActualUsageRecordType = 2
