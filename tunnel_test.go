package spur

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeTunnelObjectForm(t *testing.T) {
	record, err := DecodeContext([]byte(`{
		"ip": "1.2.3.4",
		"tunnels": [
			{
				"type": "VPN",
				"operator": "NordVPN",
				"anonymous": true,
				"entries": [
					{"ip": "5.6.7.8", "location": {"city": "Amsterdam", "country": "NL"}}
				]
			}
		]
	}`))
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	if len(record.Tunnels) != 1 {
		t.Fatalf("got %d tunnels, want 1", len(record.Tunnels))
	}
	tunnel := record.Tunnels[0]
	if tunnel.Type == nil || *tunnel.Type != TunnelTypeVPN {
		t.Fatalf("tunnel type = %v, want VPN", tunnel.Type)
	}
	if tunnel.Operator == nil || *tunnel.Operator != "NordVPN" {
		t.Fatalf("tunnel operator = %v, want NordVPN", tunnel.Operator)
	}
	if tunnel.Anonymous == nil || !*tunnel.Anonymous {
		t.Fatalf("tunnel anonymous = %v, want true", tunnel.Anonymous)
	}

	if len(tunnel.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(tunnel.Entries))
	}
	entry := tunnel.Entries[0]
	if entry.IP == nil || *entry.IP != "5.6.7.8" {
		t.Fatalf("entry ip = %v, want 5.6.7.8", entry.IP)
	}
	if entry.Location == nil || entry.Location.City == nil || *entry.Location.City != "Amsterdam" {
		t.Fatal("entry location missing Amsterdam")
	}
}

func TestDecodeTunnelBareStringForm(t *testing.T) {
	record, err := DecodeContext([]byte(`{"tunnels":["VPN","TOR"]}`))
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	want := []Tunnel{
		{Type: Ptr(TunnelTypeVPN)},
		{Type: Ptr(TunnelTypeTor)},
	}
	if !reflect.DeepEqual(record.Tunnels, want) {
		t.Fatalf("tunnels = %+v, want kind-only tunnels", record.Tunnels)
	}
}

func TestDecodeTunnelMixedForms(t *testing.T) {
	record, err := DecodeContext([]byte(`{
		"tunnels": ["VPN", {"type": "PROXY", "operator": "X", "anonymous": true}, "UNKNOWN_KIND"]
	}`))
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	tunnels := record.Tunnels
	if len(tunnels) != 3 {
		t.Fatalf("got %d tunnels, want 3", len(tunnels))
	}
	if tunnels[0].Type == nil || *tunnels[0].Type != TunnelTypeVPN {
		t.Fatalf("tunnel[0].type = %v, want VPN", tunnels[0].Type)
	}
	if tunnels[0].Operator != nil || tunnels[0].Anonymous != nil || tunnels[0].Entries != nil {
		t.Fatalf("bare-string tunnel carries extra fields: %+v", tunnels[0])
	}
	if tunnels[1].Operator == nil || *tunnels[1].Operator != "X" {
		t.Fatalf("tunnel[1].operator = %v, want X", tunnels[1].Operator)
	}
	if tunnels[2].Type == nil || tunnels[2].Type.Known() {
		t.Fatalf("tunnel[2].type = %v, want unrecognized token", tunnels[2].Type)
	}
	if got := tunnels[2].Type.String(); got != "UNKNOWN_KIND" {
		t.Fatalf("tunnel[2].type string = %s, want UNKNOWN_KIND", got)
	}
}

func TestDecodeTunnelRejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{
		`{"tunnels":[42]}`,
		`{"tunnels":[true]}`,
		`{"tunnels":[null]}`,
		`{"tunnels":[["VPN"]]}`,
	} {
		_, err := DecodeContext([]byte(raw))
		if err == nil {
			t.Fatalf("DecodeContext accepted %s, want DecodeError", raw)
		}
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("DecodeContext returned %T for %s, want *DecodeError", err, raw)
		}
	}
}

func TestEncodeTunnelAlwaysObjectForm(t *testing.T) {
	record, err := DecodeContext([]byte(`{"tunnels":["VPN"]}`))
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	encoded, err := EncodeContext(record)
	if err != nil {
		t.Fatalf("EncodeContext returned error: %v", err)
	}
	if string(encoded) != `{"tunnels":[{"type":"VPN"}]}` {
		t.Fatalf("encoding produced %s, want the object form", encoded)
	}
}

func TestDecodeTunnelEntriesBareStrings(t *testing.T) {
	record, err := DecodeContext([]byte(`{
		"tunnels": [{"type": "VPN", "entries": ["1.2.3.4", {"ip": "5.6.7.8", "as": {"number": 13335}}]}]
	}`))
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	entries := record.Tunnels[0].Entries
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].IP == nil || *entries[0].IP != "1.2.3.4" {
		t.Fatalf("entry[0].ip = %v, want 1.2.3.4", entries[0].IP)
	}
	if entries[0].Location != nil || entries[0].AutonomousSystem != nil {
		t.Fatalf("bare-string entry carries extra fields: %+v", entries[0])
	}
	if entries[1].AutonomousSystem == nil || entries[1].AutonomousSystem.Number == nil ||
		*entries[1].AutonomousSystem.Number != 13335 {
		t.Fatalf("entry[1].as = %+v, want number 13335", entries[1].AutonomousSystem)
	}
}

func TestBareStringRoundTripStabilizesAfterOneEncode(t *testing.T) {
	wire := []byte(`{"tunnels":["VPN",{"type":"PROXY","operator":"X","anonymous":true,"entries":["9.9.9.9"]}]}`)

	first, err := DecodeContext(wire)
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}
	encoded, err := EncodeContext(first)
	if err != nil {
		t.Fatalf("EncodeContext returned error: %v", err)
	}
	if strings.Contains(string(encoded), `"VPN",`) {
		t.Fatalf("encoding %s kept a bare-string tunnel", encoded)
	}

	second, err := DecodeContext(encoded)
	if err != nil {
		t.Fatalf("DecodeContext of canonical form returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decode(encode(decode(w))) = %+v, want %+v", second, first)
	}
}
