package spur

// Assessment is a decrypted Monocle assessment of one client session.
// Unlike the context records, the decryption API populates every field, so
// none of them is modeled as optional.
type Assessment struct {
	// Whether a VPN was detected.
	VPN bool `json:"vpn"`

	// Whether the traffic was proxied.
	Proxied bool `json:"proxied"`

	// Combined anonymization indicator.
	Anon bool `json:"anon"`

	// Detected client IP address.
	IP string `json:"ip"`

	// Assessment timestamp, ISO 8601.
	TS string `json:"ts"`

	// Whether the assessment completed successfully. Incomplete results
	// should be treated with caution.
	Complete bool `json:"complete"`

	// Unique assessment ID (UUID).
	ID string `json:"id"`

	// Site or form identifier supplied by the embedding page.
	SID string `json:"sid"`
}

// IsAnonymized reports whether any anonymization signal fired.
func (a *Assessment) IsAnonymized() bool {
	return a.VPN || a.Proxied || a.Anon
}

// IsTrustworthy reports whether the assessment completed and can be relied
// upon.
func (a *Assessment) IsTrustworthy() bool {
	return a.Complete
}
