package spur

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tunnel describes one anonymization tunnel (VPN, proxy or Tor) active on
// an address.
//
// The API transmits tunnels in two shapes: a bare JSON string holding just
// the tunnel type, or a full object. Decoding accepts both; encoding always
// emits the object form. The asymmetry is part of the wire contract.
type Tunnel struct {
	// Whether the tunnel anonymizes its users.
	Anonymous *bool `json:"anonymous,omitzero"`

	// Ingress points of the tunnel.
	Entries []TunnelEntry `json:"entries,omitzero"`

	// Operator or service running the tunnel.
	Operator *string `json:"operator,omitzero"`

	// Kind of tunnel. The wire key is "type".
	Type *TunnelType `json:"type,omitzero"`
}

// tunnelObject drops Tunnel's methods so the object form decodes without
// recursing into UnmarshalJSON.
type tunnelObject Tunnel

func (t *Tunnel) UnmarshalJSON(data []byte) error {
	switch kind := jsonKind(data); kind {
	case '"':
		var typ TunnelType
		if err := json.Unmarshal(data, &typ); err != nil {
			return err
		}
		*t = Tunnel{Type: &typ}
		return nil
	case '{':
		var obj tunnelObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*t = Tunnel(obj)
		return nil
	default:
		return fmt.Errorf("tunnel: expected string or object, got %s", jsonKindName(kind))
	}
}

// TunnelEntry is one ingress point of a tunnel.
//
// Entries arrive either as bare IP strings or as full objects; both decode.
// Encoding always emits the object form, like Tunnel itself.
type TunnelEntry struct {
	// Address of the ingress point.
	IP *string `json:"ip,omitzero"`

	// Geolocation of the ingress point.
	Location *Location `json:"location,omitzero"`

	// BGP origin of the ingress point. The wire key is the short "as".
	AutonomousSystem *AutonomousSystem `json:"as,omitzero"`
}

type tunnelEntryObject TunnelEntry

func (e *TunnelEntry) UnmarshalJSON(data []byte) error {
	switch kind := jsonKind(data); kind {
	case '"':
		var ip string
		if err := json.Unmarshal(data, &ip); err != nil {
			return err
		}
		*e = TunnelEntry{IP: &ip}
		return nil
	case '{':
		var obj tunnelEntryObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*e = TunnelEntry(obj)
		return nil
	default:
		return fmt.Errorf("tunnel entry: expected string or object, got %s", jsonKindName(kind))
	}
}

// jsonKind returns the first non-space byte of a JSON value, or 0 for an
// empty input.
func jsonKind(data []byte) byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func jsonKindName(kind byte) string {
	switch kind {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case 0:
		return "empty input"
	default:
		return "number"
	}
}
