package audit

import (
	"log"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

// MultiSink fans one audit entry out to several sinks. A failing sink is
// reported as a diagnostic and skipped; Append itself never fails, so one
// broken medium (say, the DynamoDB table) cannot silence the others.

type MultiSink struct {
	sinks []interfaces.IAuditSink
}

var _ interfaces.IAuditSink = (*MultiSink)(nil)

func NewMultiSink(sinks ...interfaces.IAuditSink) *MultiSink {
	kept := make([]interfaces.IAuditSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiSink{sinks: kept}
}

func (m *MultiSink) Append(entry entities.AuditEntry) error {
	for _, s := range m.sinks {
		if err := s.Append(entry); err != nil {
			log.Printf("[audit][multi] sink append failed gateway=%s err=%v", entry.Gateway, err)
		}
	}
	return nil
}
