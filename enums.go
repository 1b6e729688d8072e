package spur

// The Spur API treats every enumerated field as an open string set: new
// tokens appear without a version bump. Each family below is a defined
// string type so that unrecognized tokens survive decode and re-encode
// byte-for-byte. Known() consults the documented vocabulary; comparison
// never does.

// tokenSet holds the documented wire vocabulary of one enum family.
type tokenSet[T ~string] map[T]struct{}

func tokensOf[T ~string](tokens ...T) tokenSet[T] {
	set := make(tokenSet[T], len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func (s tokenSet[T]) has(value T) bool {
	_, ok := s[value]
	return ok
}

// Infrastructure classifies the network an IP address belongs to.
type Infrastructure string

const (
	InfrastructureDatacenter  Infrastructure = "DATACENTER"
	InfrastructureResidential Infrastructure = "RESIDENTIAL"
	InfrastructureMobile      Infrastructure = "MOBILE"
	InfrastructureBusiness    Infrastructure = "BUSINESS"
)

var infrastructureTokens = tokensOf(
	InfrastructureDatacenter,
	InfrastructureResidential,
	InfrastructureMobile,
	InfrastructureBusiness,
)

func (i Infrastructure) String() string { return string(i) }

// Known reports whether the value is one of the documented wire tokens.
func (i Infrastructure) Known() bool { return infrastructureTokens.has(i) }

// Risk is a risk factor or suspicious behavior identified for an IP.
type Risk string

const (
	RiskTunnel        Risk = "TUNNEL"
	RiskSpam          Risk = "SPAM"
	RiskCallbackProxy Risk = "CALLBACK_PROXY"
	RiskGeoMismatch   Risk = "GEO_MISMATCH"
)

var riskTokens = tokensOf(
	RiskTunnel,
	RiskSpam,
	RiskCallbackProxy,
	RiskGeoMismatch,
)

func (r Risk) String() string { return string(r) }

// Known reports whether the value is one of the documented wire tokens.
func (r Risk) Known() bool { return riskTokens.has(r) }

// Service is a network service or protocol observed in use on an IP.
type Service string

const (
	ServiceOpenVPN   Service = "OPENVPN"
	ServiceIPSec     Service = "IPSEC"
	ServiceWireGuard Service = "WIREGUARD"
	ServiceSSH       Service = "SSH"
	ServicePPTP      Service = "PPTP"
)

var serviceTokens = tokensOf(
	ServiceOpenVPN,
	ServiceIPSec,
	ServiceWireGuard,
	ServiceSSH,
	ServicePPTP,
)

func (s Service) String() string { return string(s) }

// Known reports whether the value is one of the documented wire tokens.
func (s Service) Known() bool { return serviceTokens.has(s) }

// TunnelType identifies the kind of anonymization tunnel.
type TunnelType string

const (
	TunnelTypeVPN   TunnelType = "VPN"
	TunnelTypeProxy TunnelType = "PROXY"
	TunnelTypeTor   TunnelType = "TOR"
)

var tunnelTypeTokens = tokensOf(
	TunnelTypeVPN,
	TunnelTypeProxy,
	TunnelTypeTor,
)

func (t TunnelType) String() string { return string(t) }

// Known reports whether the value is one of the documented wire tokens.
func (t TunnelType) Known() bool { return tunnelTypeTokens.has(t) }

// Behavior describes observed client behavior behind an IP.
type Behavior string

const (
	BehaviorFileSharing  Behavior = "FILE_SHARING"
	BehaviorTorProxyUser Behavior = "TOR_PROXY_USER"
)

var behaviorTokens = tokensOf(
	BehaviorFileSharing,
	BehaviorTorProxyUser,
)

func (b Behavior) String() string { return string(b) }

// Known reports whether the value is one of the documented wire tokens.
func (b Behavior) Known() bool { return behaviorTokens.has(b) }

// DeviceType describes a class of client device observed behind an IP.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "MOBILE"
	DeviceTypeDesktop DeviceType = "DESKTOP"
)

var deviceTypeTokens = tokensOf(
	DeviceTypeMobile,
	DeviceTypeDesktop,
)

func (d DeviceType) String() string { return string(d) }

// Known reports whether the value is one of the documented wire tokens.
func (d DeviceType) Known() bool { return deviceTypeTokens.has(d) }
