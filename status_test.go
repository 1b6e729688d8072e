package spur

import (
	"reflect"
	"testing"
)

func TestDecodeStatus(t *testing.T) {
	status, err := DecodeStatus([]byte(`{"active":true,"queriesRemaining":49283,"serviceTier":"online"}`))
	if err != nil {
		t.Fatalf("DecodeStatus returned error: %v", err)
	}

	if status.Active == nil || !*status.Active {
		t.Fatalf("active = %v, want true", status.Active)
	}
	if status.QueriesRemaining == nil || *status.QueriesRemaining != 49283 {
		t.Fatalf("queriesRemaining = %v, want 49283", status.QueriesRemaining)
	}
	if status.ServiceTier == nil || *status.ServiceTier != "online" {
		t.Fatalf("serviceTier = %v, want online", status.ServiceTier)
	}
}

func TestDecodeStatusPartial(t *testing.T) {
	status, err := DecodeStatus([]byte(`{"active":false}`))
	if err != nil {
		t.Fatalf("DecodeStatus returned error: %v", err)
	}
	if status.Active == nil || *status.Active {
		t.Fatalf("active = %v, want false", status.Active)
	}
	if status.QueriesRemaining != nil || status.ServiceTier != nil {
		t.Fatalf("absent fields populated: %+v", status)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	status := APIStatus{
		Active:           Ptr(true),
		QueriesRemaining: Ptr(uint64(100)),
	}

	encoded, err := EncodeStatus(&status)
	if err != nil {
		t.Fatalf("EncodeStatus returned error: %v", err)
	}
	decoded, err := DecodeStatus(encoded)
	if err != nil {
		t.Fatalf("DecodeStatus returned error: %v", err)
	}
	if !reflect.DeepEqual(&status, decoded) {
		t.Fatalf("round trip produced %+v, want %+v", decoded, &status)
	}
}

func TestEncodeStatusAllUnset(t *testing.T) {
	encoded, err := EncodeStatus(&APIStatus{})
	if err != nil {
		t.Fatalf("EncodeStatus returned error: %v", err)
	}
	if string(encoded) != "{}" {
		t.Fatalf("encoding the all-unset status produced %s, want {}", encoded)
	}
}
