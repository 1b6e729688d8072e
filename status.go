package spur

// APIStatus reports the state of an API token. Wire keys use camelCase.
type APIStatus struct {
	// Whether the token is active.
	Active *bool `json:"active,omitzero"`

	// Queries remaining in the current billing cycle.
	QueriesRemaining *uint64 `json:"queriesRemaining,omitzero"`

	// Service tier of the token (e.g. "online").
	ServiceTier *string `json:"serviceTier,omitzero"`
}
