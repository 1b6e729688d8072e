// Package spurtest provides test support for code built on the spur types:
// a fluent context builder, canned fixtures for common IP categories, and
// rapid generators for property-based round-trip testing. Nothing here is
// part of the codec contract.
package spurtest

import "spur"

// ContextBuilder assembles an IPContext incrementally. It performs no
// validation beyond types, matching the lenient decode contract: a built
// record may be internally inconsistent on purpose.
type ContextBuilder struct {
	record spur.IPContext
}

// NewContext returns a builder starting from the all-unset record.
func NewContext() *ContextBuilder {
	return &ContextBuilder{}
}

// IP sets the address.
func (b *ContextBuilder) IP(ip string) *ContextBuilder {
	b.record.IP = spur.Ptr(ip)
	return b
}

// Infrastructure sets the infrastructure classification.
func (b *ContextBuilder) Infrastructure(infra spur.Infrastructure) *ContextBuilder {
	b.record.Infrastructure = spur.Ptr(infra)
	return b
}

// Organization sets the owning organization.
func (b *ContextBuilder) Organization(org string) *ContextBuilder {
	b.record.Organization = spur.Ptr(org)
	return b
}

// ASN sets the autonomous system number and organization.
func (b *ContextBuilder) ASN(number uint32, organization string) *ContextBuilder {
	b.record.AutonomousSystem = &spur.AutonomousSystem{
		Number:       spur.Ptr(number),
		Organization: spur.Ptr(organization),
	}
	return b
}

// Location sets country and, when non-empty, city.
func (b *ContextBuilder) Location(country, city string) *ContextBuilder {
	location := &spur.Location{Country: spur.Ptr(country)}
	if city != "" {
		location.City = spur.Ptr(city)
	}
	b.record.Location = location
	return b
}

// LocationFull sets the complete location including coordinates.
func (b *ContextBuilder) LocationFull(country, state, city string, lat, lon float64) *ContextBuilder {
	location := &spur.Location{
		Country:   spur.Ptr(country),
		Latitude:  spur.Ptr(lat),
		Longitude: spur.Ptr(lon),
	}
	if state != "" {
		location.State = spur.Ptr(state)
	}
	if city != "" {
		location.City = spur.Ptr(city)
	}
	b.record.Location = location
	return b
}

// AddRisk appends one risk factor.
func (b *ContextBuilder) AddRisk(risk spur.Risk) *ContextBuilder {
	b.record.Risks = append(b.record.Risks, risk)
	return b
}

// Risks replaces the risk list.
func (b *ContextBuilder) Risks(risks ...spur.Risk) *ContextBuilder {
	b.record.Risks = risks
	return b
}

// AddService appends one active service.
func (b *ContextBuilder) AddService(service spur.Service) *ContextBuilder {
	b.record.Services = append(b.record.Services, service)
	return b
}

// VPN appends a VPN tunnel run by operator, anonymous by default.
func (b *ContextBuilder) VPN(operator string) *ContextBuilder {
	b.record.Tunnels = append(b.record.Tunnels, spur.Tunnel{
		Type:      spur.Ptr(spur.TunnelTypeVPN),
		Operator:  spur.Ptr(operator),
		Anonymous: spur.Ptr(true),
	})
	return b
}

// VPNWithEntry appends a VPN tunnel with one ingress point.
func (b *ContextBuilder) VPNWithEntry(operator, entryIP, entryCountry string) *ContextBuilder {
	b.record.Tunnels = append(b.record.Tunnels, spur.Tunnel{
		Type:      spur.Ptr(spur.TunnelTypeVPN),
		Operator:  spur.Ptr(operator),
		Anonymous: spur.Ptr(true),
		Entries: []spur.TunnelEntry{{
			IP:       spur.Ptr(entryIP),
			Location: &spur.Location{Country: spur.Ptr(entryCountry)},
		}},
	})
	return b
}

// Tor appends a Tor exit tunnel.
func (b *ContextBuilder) Tor() *ContextBuilder {
	b.record.Tunnels = append(b.record.Tunnels, spur.Tunnel{
		Type:      spur.Ptr(spur.TunnelTypeTor),
		Operator:  spur.Ptr("Tor Project"),
		Anonymous: spur.Ptr(true),
	})
	return b
}

// Proxy appends a non-anonymous proxy tunnel run by operator.
func (b *ContextBuilder) Proxy(operator string) *ContextBuilder {
	b.record.Tunnels = append(b.record.Tunnels, spur.Tunnel{
		Type:      spur.Ptr(spur.TunnelTypeProxy),
		Operator:  spur.Ptr(operator),
		Anonymous: spur.Ptr(false),
	})
	return b
}

// AIScraper marks the address with AI scraper activity.
func (b *ContextBuilder) AIScraper(scraper bool) *ContextBuilder {
	ai := b.ai()
	ai.Scrapers = spur.Ptr(scraper)
	return b
}

// AIServices sets observed AI services and marks bot activity.
func (b *ContextBuilder) AIServices(services ...string) *ContextBuilder {
	ai := b.ai()
	ai.Bots = spur.Ptr(true)
	ai.Services = services
	return b
}

// Client sets the distinct-client and distinct-country counters.
func (b *ContextBuilder) Client(count uint64, countries uint32) *ContextBuilder {
	client := b.client()
	client.Count = spur.Ptr(count)
	client.Countries = spur.Ptr(countries)
	return b
}

// ClientBehaviors replaces the observed client behaviors.
func (b *ContextBuilder) ClientBehaviors(behaviors ...spur.Behavior) *ContextBuilder {
	b.client().Behaviors = behaviors
	return b
}

// ClientTypes replaces the observed device types.
func (b *ContextBuilder) ClientTypes(types ...spur.DeviceType) *ContextBuilder {
	b.client().Types = types
	return b
}

// Concentration sets the geographic concentration of users.
func (b *ContextBuilder) Concentration(country, city string, density float64) *ContextBuilder {
	b.client().Concentration = &spur.Concentration{
		Country: spur.Ptr(country),
		City:    spur.Ptr(city),
		Density: spur.Ptr(density),
	}
	return b
}

// Build finalizes and returns the record.
func (b *ContextBuilder) Build() spur.IPContext {
	return b.record
}

func (b *ContextBuilder) ai() *spur.AI {
	if b.record.AI == nil {
		b.record.AI = &spur.AI{}
	}
	return b.record.AI
}

func (b *ContextBuilder) client() *spur.Client {
	if b.record.Client == nil {
		b.record.Client = &spur.Client{}
	}
	return b.record.Client
}
