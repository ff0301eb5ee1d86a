package interfaces

import "paydispatch/internal/domain/entities"

// IAuditSink is the append-only stream family loggers write to.
//
// Implementations that share an underlying medium (stdout, a file, a
// DynamoDB table) must serialize concurrent appends so interleaved audit
// lines are never corrupted.
type IAuditSink interface {
	Append(entry entities.AuditEntry) error
}
