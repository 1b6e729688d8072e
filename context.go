// Package spur models the JSON responses of the Spur IP-intelligence APIs:
// the IP context object, tag metadata, token status and Monocle assessments.
//
// Every field of every record is independently optional. A key absent on the
// wire stays nil in the model; encoding never writes null. Slice fields keep
// the distinction between absent (nil, key omitted) and present-but-empty
// (non-nil, encoded as []). Unknown wire keys and unknown enum tokens are
// never decode errors.
package spur

// IPContext aggregates everything the API knows about one IP address.
type IPContext struct {
	// AI activity observed from this address.
	AI *AI `json:"ai,omitzero"`

	// BGP autonomous system information. The wire key is the short "as".
	AutonomousSystem *AutonomousSystem `json:"as,omitzero"`

	// Descriptive data about the connecting client.
	Client *Client `json:"client,omitzero"`

	// Infrastructure classification (datacenter, residential, ...).
	Infrastructure *Infrastructure `json:"infrastructure,omitzero"`

	// IPv4 or IPv6 address the record describes.
	IP *string `json:"ip,omitzero"`

	// Geolocation of the address.
	Location *Location `json:"location,omitzero"`

	// Organization currently assigned to use the address.
	Organization *string `json:"organization,omitzero"`

	// Identified risk factors, in wire order.
	Risks []Risk `json:"risks,omitzero"`

	// Services or protocols in use (OpenVPN, IPSec, ...), in wire order.
	Services []Service `json:"services,omitzero"`

	// Tunneling methods (VPN, proxy, Tor) active on the address.
	Tunnels []Tunnel `json:"tunnels,omitzero"`
}

// AI describes AI crawler and bot activity observed from an address.
type AI struct {
	Scrapers *bool    `json:"scrapers,omitzero"`
	Bots     *bool    `json:"bots,omitzero"`
	Services []string `json:"services,omitzero"`
}

// AutonomousSystem is BGP origin information for an address.
type AutonomousSystem struct {
	Number       *uint32 `json:"number,omitzero"`
	Organization *string `json:"organization,omitzero"`
}

// Client summarizes the population of devices seen behind an address.
type Client struct {
	// Observed behaviors (file sharing, Tor usage, ...).
	Behaviors []Behavior `json:"behaviors,omitzero"`

	// Geographic concentration of the users behind the address.
	Concentration *Concentration `json:"concentration,omitzero"`

	// Number of distinct clients observed.
	Count *uint64 `json:"count,omitzero"`

	// Number of distinct countries observed.
	Countries *uint32 `json:"countries,omitzero"`

	// Proxy services observed (service-specific identifiers).
	Proxies []string `json:"proxies,omitzero"`

	// Geographic spread metric.
	Spread *uint64 `json:"spread,omitzero"`

	// Device types observed.
	Types []DeviceType `json:"types,omitzero"`
}

// Concentration locates the densest cluster of users behind an address.
type Concentration struct {
	City    *string  `json:"city,omitzero"`
	Country *string  `json:"country,omitzero"`
	Density *float64 `json:"density,omitzero"`
	Geohash *string  `json:"geohash,omitzero"`
	Skew    *uint64  `json:"skew,omitzero"`
	State   *string  `json:"state,omitzero"`
}

// Location is Spur's geolocation of an address.
type Location struct {
	City      *string  `json:"city,omitzero"`
	Country   *string  `json:"country,omitzero"`
	Latitude  *float64 `json:"latitude,omitzero"`
	Longitude *float64 `json:"longitude,omitzero"`
	State     *string  `json:"state,omitzero"`
}

// Ptr returns a pointer to v. It keeps literal construction of the
// all-pointer records readable.
func Ptr[T any](v T) *T { return &v }
