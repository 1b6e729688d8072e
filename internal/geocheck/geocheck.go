// Package geocheck cross-checks decoded context records against local
// GeoLite2 databases. It flags records whose location or AS fields disagree
// with what MaxMind reports for the same address, which usually means a
// stale saved response.
package geocheck

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oschwald/geoip2-golang"

	"spur"
)

const (
	CountryFileName = "GeoLite2-Country.mmdb"
	ASNFileName     = "GeoLite2-ASN.mmdb"
)

// ErrNoIP indicates the record carries no address to look up.
var ErrNoIP = errors.New("geocheck: record has no ip")

// Checker holds open GeoLite2 readers.
type Checker struct {
	country *geoip2.Reader
	asn     *geoip2.Reader
}

// Open loads the country and ASN databases from dir. Both files must be
// present.
func Open(dir string) (*Checker, error) {
	countryData, err := os.ReadFile(filepath.Join(dir, CountryFileName))
	if err != nil {
		return nil, fmt.Errorf("geocheck: read country database: %w", err)
	}
	asnData, err := os.ReadFile(filepath.Join(dir, ASNFileName))
	if err != nil {
		return nil, fmt.Errorf("geocheck: read asn database: %w", err)
	}

	country, err := geoip2.FromBytes(countryData)
	if err != nil {
		return nil, fmt.Errorf("geocheck: open country database: %w", err)
	}
	asn, err := geoip2.FromBytes(asnData)
	if err != nil {
		country.Close()
		return nil, fmt.Errorf("geocheck: open asn database: %w", err)
	}

	return &Checker{country: country, asn: asn}, nil
}

// Close releases both readers.
func (c *Checker) Close() error {
	return errors.Join(c.country.Close(), c.asn.Close())
}

// Mismatch reports one disagreement between a record field and the GeoLite2
// lookup for the record's address.
type Mismatch struct {
	// Field is the wire-key path of the disagreeing field.
	Field string
	// Record is the value carried by the decoded record.
	Record string
	// Lookup is the value GeoLite2 reports.
	Lookup string
}

// Check looks up the record's address and compares the record's country and
// AS fields against the databases. Fields absent from the record are
// skipped, not flagged.
func (c *Checker) Check(record *spur.IPContext) ([]Mismatch, error) {
	if record.IP == nil {
		return nil, ErrNoIP
	}
	ip := net.ParseIP(*record.IP)
	if ip == nil {
		return nil, fmt.Errorf("geocheck: invalid ip %q", *record.IP)
	}

	var mismatches []Mismatch

	country, err := c.country.Country(ip)
	if err != nil {
		return nil, fmt.Errorf("geocheck: country lookup: %w", err)
	}
	mismatches = append(mismatches, compareCountry(record.Location, country.Country.IsoCode)...)

	asn, err := c.asn.ASN(ip)
	if err != nil {
		return nil, fmt.Errorf("geocheck: asn lookup: %w", err)
	}
	mismatches = append(mismatches, compareAS(record.AutonomousSystem, asn.AutonomousSystemNumber, asn.AutonomousSystemOrganization)...)

	return mismatches, nil
}

func compareCountry(location *spur.Location, lookupCountry string) []Mismatch {
	if location == nil || location.Country == nil || lookupCountry == "" {
		return nil
	}
	if *location.Country == lookupCountry {
		return nil
	}
	return []Mismatch{{
		Field:  "location.country",
		Record: *location.Country,
		Lookup: lookupCountry,
	}}
}

func compareAS(asys *spur.AutonomousSystem, lookupNumber uint, lookupOrg string) []Mismatch {
	if asys == nil {
		return nil
	}

	var mismatches []Mismatch
	if asys.Number != nil && lookupNumber != 0 && uint(*asys.Number) != lookupNumber {
		mismatches = append(mismatches, Mismatch{
			Field:  "as.number",
			Record: strconv.FormatUint(uint64(*asys.Number), 10),
			Lookup: strconv.FormatUint(uint64(lookupNumber), 10),
		})
	}
	if asys.Organization != nil && lookupOrg != "" && *asys.Organization != lookupOrg {
		mismatches = append(mismatches, Mismatch{
			Field:  "as.organization",
			Record: *asys.Organization,
			Lookup: lookupOrg,
		})
	}
	return mismatches
}
