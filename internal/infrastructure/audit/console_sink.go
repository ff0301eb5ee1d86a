package audit

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

// ConsoleSink appends audit entries as single text lines to a writer.
//
// The writer is shared across every family logger, so appends are
// serialized with a mutex: concurrent dispatches never interleave bytes
// of two audit lines.

type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

var _ interfaces.IAuditSink = (*ConsoleSink)(nil)

// NewConsoleSink writes to out, defaulting to stdout when out is nil.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Append(entry entities.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.out, "%s [%s] %s\n", entry.Timestamp.Format(time.RFC3339Nano), entry.Gateway, entry.Message)
	return err
}
