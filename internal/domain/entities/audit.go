package entities

import "time"

// AuditEntry is one line of the append-only audit trail written by a
// family's transaction logger. Entries have no identity beyond insertion
// order; the sink guarantees ordering, not the storage medium.

type AuditEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Gateway   GatewaySelector `json:"gateway"`
	Message   string          `json:"message"`
}
