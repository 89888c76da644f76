// Package ledger collects per-item pipeline failures without stopping the run.
// A Ledger is safe for concurrent use.
package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kpango/glg"
)

// DefaultURLFormat builds a link to the offending node. Arguments: file key, node id.
const DefaultURLFormat = "https://www.figma.com/file/%s?node-id=%s"

// Subject is an entity that can be recorded in the ledger.
type Subject interface {
	// LedgerName is used for sorting and as the "name" column.
	LedgerName() string
	// LedgerID is the design-tool node id. Empty means no url in reports.
	LedgerID() string
}

// Named is a Subject carrying only a name (e.g. a group of icons).
type Named string

func (n Named) LedgerName() string { return string(n) }

func (n Named) LedgerID() string { return "" }

// Entry is a single recorded failure.
type Entry struct {
	Code Code
	Raw  Subject
}

// Row is an Entry projected for reporting.
type Row struct {
	Name  string
	Error string
	URL   string
}

// Ledger is an append-only failure log.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
	fileKey string
}

// New creates an empty Ledger. fileKey is used to build node urls.
func New(fileKey string) *Ledger {
	return &Ledger{fileKey: fileKey}
}

// Add records a failure of raw.
func (l *Ledger) Add(raw Subject, code Code) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Code: code, Raw: raw})
	l.mu.Unlock()

	glg.Debugf("ledger: %s %q", code.Name(), raw.LedgerName())
}

// Len returns number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]Entry, len(l.entries))
	copy(result, l.entries)

	return result
}

// Count returns how many entries have the given code.
func (l *Ledger) Count(code Code) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Code == code {
			n++
		}
	}

	return n
}

// Rows returns the report projection sorted ascending by name.
func (l *Ledger) Rows() []Row {
	entries := l.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Raw.LedgerName() < entries[j].Raw.LedgerName()
	})

	result := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			Name:  e.Raw.LedgerName(),
			Error: e.Code.String(),
		}

		if id := e.Raw.LedgerID(); id != "" {
			row.URL = fmt.Sprintf(DefaultURLFormat, l.fileKey, id)
		}

		result = append(result, row)
	}

	return result
}
