package spurtest

import (
	"spur"

	"pgregory.net/rapid"
)

// Generators for property-based testing with rapid. Every optional field
// toggles presence independently, slice fields produce nil, empty and
// populated forms, and every enum family mixes documented tokens with
// arbitrary fallback strings.

// fallbackToken matches the shape of tokens the API mints for new values.
var fallbackToken = rapid.StringMatching(`[A-Z_]{3,20}`)

var (
	countryCode = rapid.StringMatching(`[A-Z]{2}`)
	placeName   = rapid.StringMatching(`[A-Za-z ]{2,30}`)
	orgName     = rapid.StringMatching(`[A-Za-z0-9 ]{2,50}`)
	ipv4String  = rapid.StringMatching(`((25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|1?[0-9]?[0-9])`)
	geohash     = rapid.StringMatching(`[a-z0-9]{3,12}`)
)

func enumGen[T ~string](known []T) *rapid.Generator[T] {
	return rapid.OneOf(
		rapid.SampledFrom(known),
		rapid.Map(fallbackToken, func(s string) T { return T(s) }),
	)
}

func sliceOrNil[T any](elem *rapid.Generator[T]) *rapid.Generator[[]T] {
	return rapid.OneOf(
		rapid.Just([]T(nil)),
		rapid.SliceOfN(elem, 0, 4),
	)
}

func optional[T any](elem *rapid.Generator[T]) *rapid.Generator[*T] {
	return rapid.Ptr(elem, true)
}

// InfrastructureGen draws documented and fallback infrastructure tokens.
func InfrastructureGen() *rapid.Generator[spur.Infrastructure] {
	return enumGen([]spur.Infrastructure{
		spur.InfrastructureDatacenter,
		spur.InfrastructureResidential,
		spur.InfrastructureMobile,
		spur.InfrastructureBusiness,
	})
}

// RiskGen draws documented and fallback risk tokens.
func RiskGen() *rapid.Generator[spur.Risk] {
	return enumGen([]spur.Risk{
		spur.RiskTunnel,
		spur.RiskSpam,
		spur.RiskCallbackProxy,
		spur.RiskGeoMismatch,
	})
}

// ServiceGen draws documented and fallback service tokens.
func ServiceGen() *rapid.Generator[spur.Service] {
	return enumGen([]spur.Service{
		spur.ServiceOpenVPN,
		spur.ServiceIPSec,
		spur.ServiceWireGuard,
		spur.ServiceSSH,
		spur.ServicePPTP,
	})
}

// TunnelTypeGen draws documented and fallback tunnel type tokens.
func TunnelTypeGen() *rapid.Generator[spur.TunnelType] {
	return enumGen([]spur.TunnelType{
		spur.TunnelTypeVPN,
		spur.TunnelTypeProxy,
		spur.TunnelTypeTor,
	})
}

// BehaviorGen draws documented and fallback behavior tokens.
func BehaviorGen() *rapid.Generator[spur.Behavior] {
	return enumGen([]spur.Behavior{
		spur.BehaviorFileSharing,
		spur.BehaviorTorProxyUser,
	})
}

// DeviceTypeGen draws documented and fallback device type tokens.
func DeviceTypeGen() *rapid.Generator[spur.DeviceType] {
	return enumGen([]spur.DeviceType{
		spur.DeviceTypeMobile,
		spur.DeviceTypeDesktop,
	})
}

// LocationGen draws locations with independently present fields.
func LocationGen() *rapid.Generator[spur.Location] {
	return rapid.Custom(func(t *rapid.T) spur.Location {
		return spur.Location{
			City:      optional(placeName).Draw(t, "city"),
			Country:   optional(countryCode).Draw(t, "country"),
			Latitude:  optional(rapid.Float64Range(-90, 90)).Draw(t, "latitude"),
			Longitude: optional(rapid.Float64Range(-180, 180)).Draw(t, "longitude"),
			State:     optional(placeName).Draw(t, "state"),
		}
	})
}

// AutonomousSystemGen draws AS records.
func AutonomousSystemGen() *rapid.Generator[spur.AutonomousSystem] {
	return rapid.Custom(func(t *rapid.T) spur.AutonomousSystem {
		return spur.AutonomousSystem{
			Number:       optional(rapid.Uint32Range(1, 400000)).Draw(t, "number"),
			Organization: optional(orgName).Draw(t, "organization"),
		}
	})
}

// ConcentrationGen draws concentration records.
func ConcentrationGen() *rapid.Generator[spur.Concentration] {
	return rapid.Custom(func(t *rapid.T) spur.Concentration {
		return spur.Concentration{
			City:    optional(placeName).Draw(t, "city"),
			Country: optional(countryCode).Draw(t, "country"),
			Density: optional(rapid.Float64Range(0, 1)).Draw(t, "density"),
			Geohash: optional(geohash).Draw(t, "geohash"),
			Skew:    optional(rapid.Uint64Range(0, 10000)).Draw(t, "skew"),
			State:   optional(placeName).Draw(t, "state"),
		}
	})
}

// TunnelEntryGen draws tunnel ingress points.
func TunnelEntryGen() *rapid.Generator[spur.TunnelEntry] {
	return rapid.Custom(func(t *rapid.T) spur.TunnelEntry {
		return spur.TunnelEntry{
			IP:               optional(ipv4String).Draw(t, "ip"),
			Location:         optional(LocationGen()).Draw(t, "location"),
			AutonomousSystem: optional(AutonomousSystemGen()).Draw(t, "as"),
		}
	})
}

// TunnelGen draws tunnels, including kind-only ones equivalent to the
// bare-string wire shape.
func TunnelGen() *rapid.Generator[spur.Tunnel] {
	full := rapid.Custom(func(t *rapid.T) spur.Tunnel {
		return spur.Tunnel{
			Anonymous: optional(rapid.Bool()).Draw(t, "anonymous"),
			Entries:   sliceOrNil(TunnelEntryGen()).Draw(t, "entries"),
			Operator:  optional(orgName).Draw(t, "operator"),
			Type:      optional(TunnelTypeGen()).Draw(t, "type"),
		}
	})
	kindOnly := rapid.Custom(func(t *rapid.T) spur.Tunnel {
		return spur.Tunnel{Type: spur.Ptr(TunnelTypeGen().Draw(t, "type"))}
	})
	return rapid.OneOf(full, kindOnly)
}

// AIGen draws AI activity records.
func AIGen() *rapid.Generator[spur.AI] {
	return rapid.Custom(func(t *rapid.T) spur.AI {
		return spur.AI{
			Scrapers: optional(rapid.Bool()).Draw(t, "scrapers"),
			Bots:     optional(rapid.Bool()).Draw(t, "bots"),
			Services: sliceOrNil(fallbackToken).Draw(t, "services"),
		}
	})
}

// ClientGen draws client population records.
func ClientGen() *rapid.Generator[spur.Client] {
	return rapid.Custom(func(t *rapid.T) spur.Client {
		return spur.Client{
			Behaviors:     sliceOrNil(BehaviorGen()).Draw(t, "behaviors"),
			Concentration: optional(ConcentrationGen()).Draw(t, "concentration"),
			Count:         optional(rapid.Uint64Range(0, 1<<40)).Draw(t, "count"),
			Countries:     optional(rapid.Uint32Range(0, 250)).Draw(t, "countries"),
			Proxies:       sliceOrNil(fallbackToken).Draw(t, "proxies"),
			Spread:        optional(rapid.Uint64Range(0, 1<<40)).Draw(t, "spread"),
			Types:         sliceOrNil(DeviceTypeGen()).Draw(t, "types"),
		}
	})
}

// ContextGen draws full IP context records.
func ContextGen() *rapid.Generator[spur.IPContext] {
	return rapid.Custom(func(t *rapid.T) spur.IPContext {
		return spur.IPContext{
			AI:               optional(AIGen()).Draw(t, "ai"),
			AutonomousSystem: optional(AutonomousSystemGen()).Draw(t, "as"),
			Client:           optional(ClientGen()).Draw(t, "client"),
			Infrastructure:   optional(InfrastructureGen()).Draw(t, "infrastructure"),
			IP:               optional(ipv4String).Draw(t, "ip"),
			Location:         optional(LocationGen()).Draw(t, "location"),
			Organization:     optional(orgName).Draw(t, "organization"),
			Risks:            sliceOrNil(RiskGen()).Draw(t, "risks"),
			Services:         sliceOrNil(ServiceGen()).Draw(t, "services"),
			Tunnels:          sliceOrNil(TunnelGen()).Draw(t, "tunnels"),
		}
	})
}

// MinimalContextGen draws records with only the address set, the smallest
// shape the API returns in practice.
func MinimalContextGen() *rapid.Generator[spur.IPContext] {
	return rapid.Custom(func(t *rapid.T) spur.IPContext {
		return spur.IPContext{IP: spur.Ptr(ipv4String.Draw(t, "ip"))}
	})
}

// VPNContextGen draws records shaped like VPN exit nodes.
func VPNContextGen() *rapid.Generator[spur.IPContext] {
	return rapid.Custom(func(t *rapid.T) spur.IPContext {
		return NewContext().
			IP(ipv4String.Draw(t, "ip")).
			Infrastructure(spur.InfrastructureDatacenter).
			ASN(rapid.Uint32Range(1, 400000).Draw(t, "asn"), orgName.Draw(t, "asOrg")).
			VPN(orgName.Draw(t, "operator")).
			AddRisk(spur.RiskTunnel).
			AddService(ServiceGen().Draw(t, "service")).
			Build()
	})
}

// stringBoolGen draws flexible booleans.
func stringBoolGen() *rapid.Generator[spur.StringBool] {
	return rapid.Map(rapid.Bool(), func(b bool) spur.StringBool { return spur.StringBool(b) })
}

// TagMetricsGen draws tag metrics with verbatim numeric strings.
func TagMetricsGen() *rapid.Generator[spur.TagMetrics] {
	integer := rapid.StringMatching(`[0-9]{1,9}`)
	decimal := rapid.StringMatching(`[0-9]{1,3}\.[0-9]{1,8}`)
	return rapid.Custom(func(t *rapid.T) spur.TagMetrics {
		return spur.TagMetrics{
			AverageDeviceCount: optional(decimal).Draw(t, "averageDeviceCount"),
			ChurnRate:          optional(decimal).Draw(t, "churnRate"),
			DistinctASNs:       optional(integer).Draw(t, "distinctASNs"),
			DistinctCountries:  optional(integer).Draw(t, "distinctCountries"),
			DistinctIPs:        optional(integer).Draw(t, "distinctIPs"),
			DistinctISPs:       optional(integer).Draw(t, "distinctISPs"),
		}
	})
}

// TagMetadataGen draws tag metadata records.
func TagMetadataGen() *rapid.Generator[spur.TagMetadata] {
	return rapid.Custom(func(t *rapid.T) spur.TagMetadata {
		return spur.TagMetadata{
			AllowsCrypto:     optional(stringBoolGen()).Draw(t, "allowsCrypto"),
			AllowsFreeAccess: optional(stringBoolGen()).Draw(t, "allowsFreeAccess"),
			AllowsMultihop:   optional(stringBoolGen()).Draw(t, "allowsMultihop"),
			AllowsTorrents:   optional(stringBoolGen()).Draw(t, "allowsTorrents"),
			AllowsWhiteLabel: optional(stringBoolGen()).Draw(t, "allowsWhiteLabel"),
			Categories:       sliceOrNil(fallbackToken).Draw(t, "categories"),
			Description:      optional(placeName).Draw(t, "description"),
			IsAnonymous:      optional(stringBoolGen()).Draw(t, "isAnonymous"),
			IsCallbackProxy:  optional(stringBoolGen()).Draw(t, "isCallbackProxy"),
			IsEnterprise:     optional(stringBoolGen()).Draw(t, "isEnterprise"),
			IsInactive:       optional(stringBoolGen()).Draw(t, "isInactive"),
			IsNoLog:          optional(stringBoolGen()).Draw(t, "isNoLog"),
			Metrics:          optional(TagMetricsGen()).Draw(t, "metrics"),
			Name:             optional(orgName).Draw(t, "name"),
			Platforms:        sliceOrNil(fallbackToken).Draw(t, "platforms"),
			Protocols:        sliceOrNil(fallbackToken).Draw(t, "protocols"),
			Tag:              optional(fallbackToken).Draw(t, "tag"),
			TargetingTypes:   sliceOrNil(fallbackToken).Draw(t, "targetingTypes"),
			Website:          optional(rapid.StringMatching(`https://[a-z]{3,12}\.example`)).Draw(t, "website"),
		}
	})
}

// StatusGen draws API status records.
func StatusGen() *rapid.Generator[spur.APIStatus] {
	return rapid.Custom(func(t *rapid.T) spur.APIStatus {
		return spur.APIStatus{
			Active:           optional(rapid.Bool()).Draw(t, "active"),
			QueriesRemaining: optional(rapid.Uint64Range(0, 1<<40)).Draw(t, "queriesRemaining"),
			ServiceTier:      optional(rapid.StringMatching(`[a-z]{3,10}`)).Draw(t, "serviceTier"),
		}
	})
}

// AssessmentGen draws Monocle assessments.
func AssessmentGen() *rapid.Generator[spur.Assessment] {
	return rapid.Custom(func(t *rapid.T) spur.Assessment {
		return spur.Assessment{
			VPN:      rapid.Bool().Draw(t, "vpn"),
			Proxied:  rapid.Bool().Draw(t, "proxied"),
			Anon:     rapid.Bool().Draw(t, "anon"),
			IP:       ipv4String.Draw(t, "ip"),
			TS:       rapid.StringMatching(`20[0-9]{2}-(0[1-9]|1[0-2])-(0[1-9]|2[0-8])T([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]Z`).Draw(t, "ts"),
			Complete: rapid.Bool().Draw(t, "complete"),
			ID:       rapid.StringMatching(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`).Draw(t, "id"),
			SID:      rapid.StringMatching(`[a-z-]{3,20}`).Draw(t, "sid"),
		}
	})
}
