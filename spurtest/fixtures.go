package spurtest

import "spur"

// Canned records for the categories that show up in practice. Several of
// them deliberately carry tokens outside the documented vocabulary
// ("ANONYMOUS", "TOR_EXIT", ...) so that fallback values keep flowing
// through round-trip tests.

// ResidentialIP is a clean home connection with a single desktop user.
func ResidentialIP() spur.IPContext {
	return NewContext().
		IP("203.0.113.1").
		Infrastructure(spur.InfrastructureResidential).
		ASN(7922, "Comcast Cable").
		Location("US", "Philadelphia").
		Client(1, 1).
		ClientTypes(spur.DeviceTypeDesktop).
		Build()
}

// MobileIP is a carrier-grade mobile address shared by many users.
func MobileIP() spur.IPContext {
	return NewContext().
		IP("203.0.113.2").
		Infrastructure(spur.InfrastructureMobile).
		ASN(310, "T-Mobile USA").
		Location("US", "Los Angeles").
		Client(50, 1).
		ClientTypes(spur.DeviceTypeMobile).
		Build()
}

// DatacenterIP is a cloud instance with no specific risk indicators.
func DatacenterIP() spur.IPContext {
	return NewContext().
		IP("198.51.100.1").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(16509, "Amazon Data Services").
		Location("US", "Ashburn").
		Organization("AWS").
		Build()
}

// VPNIP is a known VPN exit node.
func VPNIP() spur.IPContext {
	return NewContext().
		IP("89.39.106.191").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(49981, "WorldStream").
		Location("NL", "Amsterdam").
		VPN("NordVPN").
		AddRisk(spur.Risk("ANONYMOUS")).
		AddService(spur.ServiceOpenVPN).
		Build()
}

// TorExitNode is a Tor exit with fully anonymous traffic.
func TorExitNode() spur.IPContext {
	return NewContext().
		IP("185.220.101.1").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(60729, "Tor Exit").
		Location("DE", "Frankfurt").
		Tor().
		AddRisk(spur.Risk("ANONYMOUS")).
		AddRisk(spur.Risk("TOR_EXIT")).
		Build()
}

// ProxyIP is a commercial proxy endpoint shared by many clients.
func ProxyIP() spur.IPContext {
	return NewContext().
		IP("45.33.32.156").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(63949, "Linode").
		Proxy("Bright Data").
		Client(100, 15).
		ClientBehaviors(spur.Behavior("PROXY_USER")).
		AddRisk(spur.Risk("PROXY")).
		Build()
}

// AIScraperIP is an address running AI crawler traffic.
func AIScraperIP() spur.IPContext {
	return NewContext().
		IP("20.15.240.0").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(8075, "Microsoft Corporation").
		Organization("OpenAI").
		AIScraper(true).
		AIServices("OPENAI", "CHATGPT").
		AddRisk(spur.Risk("AI_SCRAPER")).
		Build()
}

// ResidentialProxyIP is a home address enrolled in a proxy network.
func ResidentialProxyIP() spur.IPContext {
	return NewContext().
		IP("73.231.45.12").
		Infrastructure(spur.InfrastructureResidential).
		ASN(7922, "Comcast Cable").
		Location("US", "Seattle").
		Client(200, 45).
		ClientBehaviors(spur.BehaviorFileSharing, spur.BehaviorTorProxyUser).
		Concentration("RU", "Moscow", 0.85).
		AddRisk(spur.Risk("RESIDENTIAL_PROXY")).
		Build()
}

// CorporateIP is a clean business network address.
func CorporateIP() spur.IPContext {
	return NewContext().
		IP("17.253.144.10").
		Infrastructure(spur.InfrastructureBusiness).
		ASN(714, "Apple Inc").
		Location("US", "Cupertino").
		Organization("Apple Inc").
		Client(1, 1).
		ClientTypes(spur.DeviceTypeDesktop).
		Build()
}

// HighRiskIP stacks several tunnels and risk factors on one address.
func HighRiskIP() spur.IPContext {
	return NewContext().
		IP("5.188.206.1").
		Infrastructure(spur.InfrastructureDatacenter).
		ASN(49505, "Selectel").
		Location("RU", "Moscow").
		VPN("Unknown VPN").
		Proxy("Luminati").
		Risks(spur.Risk("ANONYMOUS"), spur.RiskSpam, spur.Risk("SCAN"), spur.Risk("ATTACK"), spur.Risk("MALWARE")).
		Client(500, 80).
		ClientBehaviors(spur.Behavior("SPAM"), spur.Behavior("SCAN"), spur.Behavior("ATTACK")).
		Build()
}

// All returns every canned fixture, keyed by a short name.
func All() map[string]spur.IPContext {
	return map[string]spur.IPContext{
		"residential":       ResidentialIP(),
		"mobile":            MobileIP(),
		"datacenter":        DatacenterIP(),
		"vpn":               VPNIP(),
		"tor_exit":          TorExitNode(),
		"proxy":             ProxyIP(),
		"ai_scraper":        AIScraperIP(),
		"residential_proxy": ResidentialProxyIP(),
		"corporate":         CorporateIP(),
		"high_risk":         HighRiskIP(),
	}
}
