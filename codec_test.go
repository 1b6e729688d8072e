package spur

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeRejectsNonObjectInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty input", ``},
		{"null", `null`},
		{"array", `[]`},
		{"string", `"DATACENTER"`},
		{"number", `123`},
		{"truncated object", `{"ip":"1.2.3.4"`},
		{"garbage", `{invalid}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeContext([]byte(tc.raw))
			if err == nil {
				t.Fatalf("DecodeContext accepted %q", tc.raw)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("DecodeContext returned %T, want *DecodeError", err)
			}
			if decodeErr.Entity != "ip context" {
				t.Fatalf("DecodeError.Entity = %s, want ip context", decodeErr.Entity)
			}
		})
	}
}

func TestDecodeRejectsMistypedFields(t *testing.T) {
	for _, raw := range []string{
		`{"as":"AS49981"}`,
		`{"as":123}`,
		`{"risks":"TUNNEL"}`,
		`{"ip":42}`,
		`{"client":{"count":"many"}}`,
		`{"location":[1,2]}`,
	} {
		_, err := DecodeContext([]byte(raw))
		if err == nil {
			t.Fatalf("DecodeContext accepted %s, want DecodeError", raw)
		}
	}
}

func TestDecodeErrorWrapsCause(t *testing.T) {
	_, err := DecodeContext([]byte(`{"ip":42}`))

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("DecodeContext returned %T, want *DecodeError", err)
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatal("DecodeError does not unwrap to the underlying type error")
	}
	if !strings.Contains(decodeErr.Error(), "ip context") {
		t.Fatalf("error message %q does not name the entity", decodeErr.Error())
	}
}

// The worked end-to-end example from the API documentation.
func TestDecodeContextWorkedExample(t *testing.T) {
	wire := []byte(`{"ip":"89.39.106.191","infrastructure":"DATACENTER","as":{"number":49981,"organization":"WorldStream"},"risks":["TUNNEL","SPAM"],"tunnels":[{"type":"VPN","operator":"NordVPN","anonymous":true}]}`)

	record, err := DecodeContext(wire)
	if err != nil {
		t.Fatalf("DecodeContext returned error: %v", err)
	}

	want := &IPContext{
		IP:             Ptr("89.39.106.191"),
		Infrastructure: Ptr(InfrastructureDatacenter),
		AutonomousSystem: &AutonomousSystem{
			Number:       Ptr(uint32(49981)),
			Organization: Ptr("WorldStream"),
		},
		Risks: []Risk{RiskTunnel, RiskSpam},
		Tunnels: []Tunnel{{
			Type:      Ptr(TunnelTypeVPN),
			Operator:  Ptr("NordVPN"),
			Anonymous: Ptr(true),
		}},
	}
	if !reflect.DeepEqual(record, want) {
		t.Fatalf("decoded record = %+v, want %+v", record, want)
	}

	encoded, err := EncodeContext(record)
	if err != nil {
		t.Fatalf("EncodeContext returned error: %v", err)
	}
	again, err := DecodeContext(encoded)
	if err != nil {
		t.Fatalf("DecodeContext of re-encoded bytes returned error: %v", err)
	}
	if !reflect.DeepEqual(record, again) {
		t.Fatalf("re-decoded record = %+v, want %+v", again, record)
	}
}

// The wire-name mapping is part of the contract. This test enumerates the
// struct tags of every record type and pins them to the documented keys.
func TestWireKeyMapping(t *testing.T) {
	cases := []struct {
		name   string
		record any
		keys   map[string]string
	}{
		{
			name:   "IPContext",
			record: IPContext{},
			keys: map[string]string{
				"AI":               "ai",
				"AutonomousSystem": "as",
				"Client":           "client",
				"Infrastructure":   "infrastructure",
				"IP":               "ip",
				"Location":         "location",
				"Organization":     "organization",
				"Risks":            "risks",
				"Services":         "services",
				"Tunnels":          "tunnels",
			},
		},
		{
			name:   "Tunnel",
			record: Tunnel{},
			keys: map[string]string{
				"Anonymous": "anonymous",
				"Entries":   "entries",
				"Operator":  "operator",
				"Type":      "type",
			},
		},
		{
			name:   "TunnelEntry",
			record: TunnelEntry{},
			keys: map[string]string{
				"IP":               "ip",
				"Location":         "location",
				"AutonomousSystem": "as",
			},
		},
		{
			name:   "APIStatus",
			record: APIStatus{},
			keys: map[string]string{
				"Active":           "active",
				"QueriesRemaining": "queriesRemaining",
				"ServiceTier":      "serviceTier",
			},
		},
		{
			name:   "TagMetrics",
			record: TagMetrics{},
			keys: map[string]string{
				"AverageDeviceCount": "averageDeviceCount",
				"ChurnRate":          "churnRate",
				"DistinctASNs":       "distinctASNs",
				"DistinctCountries":  "distinctCountries",
				"DistinctIPs":        "distinctIPs",
				"DistinctISPs":       "distinctISPs",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			typ := reflect.TypeOf(tc.record)
			if typ.NumField() != len(tc.keys) {
				t.Fatalf("%s has %d fields, documentation covers %d", tc.name, typ.NumField(), len(tc.keys))
			}
			for i := range typ.NumField() {
				field := typ.Field(i)
				wireKey, _, _ := strings.Cut(field.Tag.Get("json"), ",")
				want, ok := tc.keys[field.Name]
				if !ok {
					t.Fatalf("field %s.%s is not documented", tc.name, field.Name)
				}
				if wireKey != want {
					t.Fatalf("field %s.%s maps to wire key %q, want %q", tc.name, field.Name, wireKey, want)
				}
			}
		})
	}
}

func TestTagMetadataWireKeysAreCamelCase(t *testing.T) {
	typ := reflect.TypeOf(TagMetadata{})
	for i := range typ.NumField() {
		field := typ.Field(i)
		wireKey, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if wireKey == "" {
			t.Fatalf("field %s has no wire key", field.Name)
		}
		if strings.ContainsAny(wireKey, "_- ") || wireKey[0] >= 'A' && wireKey[0] <= 'Z' {
			t.Fatalf("field %s maps to wire key %q, want lower camelCase", field.Name, wireKey)
		}
	}
}

func TestCodecIsSafeForConcurrentUse(t *testing.T) {
	wire := []byte(`{"ip":"89.39.106.191","infrastructure":"DATACENTER","tunnels":["VPN"]}`)

	done := make(chan error, 16)
	for range 16 {
		go func() {
			record, err := DecodeContext(wire)
			if err != nil {
				done <- err
				return
			}
			_, err = EncodeContext(record)
			done <- err
		}()
	}
	for range 16 {
		if err := <-done; err != nil {
			t.Fatalf("concurrent decode/encode returned error: %v", err)
		}
	}
}
