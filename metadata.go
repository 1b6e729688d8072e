package spur

import (
	"encoding/json"
	"fmt"
)

// TagMetadata carries analysis, statistics and metrics for one service tag.
// All wire keys use camelCase; the indicator fields arrive either as JSON
// booleans or as the strings "true"/"false" (see StringBool).
type TagMetadata struct {
	// Whether the service supports crypto-based payments.
	AllowsCrypto *StringBool `json:"allowsCrypto,omitzero"`

	// Whether the service is available for free usage.
	AllowsFreeAccess *StringBool `json:"allowsFreeAccess,omitzero"`

	// Whether the service offers multi-hop or chaining functionality.
	AllowsMultihop *StringBool `json:"allowsMultihop,omitzero"`

	// Whether the service permits torrent or P2P traffic.
	AllowsTorrents *StringBool `json:"allowsTorrents,omitzero"`

	// Whether white-label or rebranded versions of the service exist.
	AllowsWhiteLabel *StringBool `json:"allowsWhiteLabel,omitzero"`

	// Product categories (e.g. "RESIDENTIAL_PROXY", "ISP_PROXY").
	Categories []string `json:"categories,omitzero"`

	// Free-text description of the service.
	Description *string `json:"description,omitzero"`

	// Whether the service primarily anonymizes user traffic.
	IsAnonymous *StringBool `json:"isAnonymous,omitzero"`

	// Whether the service includes callback or reverse-proxy functionality.
	IsCallbackProxy *StringBool `json:"isCallbackProxy,omitzero"`

	// Whether the service is oriented toward enterprise usage.
	IsEnterprise *StringBool `json:"isEnterprise,omitzero"`

	// Whether the service is currently inactive or defunct.
	IsInactive *StringBool `json:"isInactive,omitzero"`

	// Whether the service claims a no-logging policy.
	IsNoLog *StringBool `json:"isNoLog,omitzero"`

	// Usage metrics for the service.
	Metrics *TagMetrics `json:"metrics,omitzero"`

	// Human-readable service name.
	Name *string `json:"name,omitzero"`

	// Supported platforms (e.g. "ROUTER").
	Platforms []string `json:"platforms,omitzero"`

	// Protocols used for network traffic.
	Protocols []string `json:"protocols,omitzero"`

	// Unique tag identifier.
	Tag *string `json:"tag,omitzero"`

	// Exit targeting granularities (e.g. "CITY", "COUNTRY", "ASN").
	TargetingTypes []string `json:"targetingTypes,omitzero"`

	// Primary website of the service.
	Website *string `json:"website,omitzero"`
}

// TagMetrics holds usage statistics for a tagged service. The API transmits
// every metric as a decimal string, exactly as observed; the values are kept
// verbatim rather than parsed.
type TagMetrics struct {
	AverageDeviceCount *string `json:"averageDeviceCount,omitzero"`
	ChurnRate          *string `json:"churnRate,omitzero"`
	DistinctASNs       *string `json:"distinctASNs,omitzero"`
	DistinctCountries  *string `json:"distinctCountries,omitzero"`
	DistinctIPs        *string `json:"distinctIPs,omitzero"`
	DistinctISPs       *string `json:"distinctISPs,omitzero"`
}

// StringBool is a boolean the API transmits either as a JSON boolean or as
// the string "true"/"false". Decoding accepts both forms; any other string
// is a structural mismatch. Encoding always emits the string form, which is
// the shape observed in live responses.
type StringBool bool

func (b StringBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

func (b *StringBool) UnmarshalJSON(data []byte) error {
	switch kind := jsonKind(data); kind {
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = StringBool(v)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "true":
			*b = true
		case "false":
			*b = false
		default:
			return fmt.Errorf("flexible boolean: invalid string %q", s)
		}
		return nil
	default:
		return fmt.Errorf("flexible boolean: expected boolean or string, got %s", jsonKindName(kind))
	}
}
