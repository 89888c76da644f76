package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const csvHeader = "name,error,url"

// CSV renders the report as quoted CSV. Fields are not escaped.
func (l *Ledger) CSV() string {
	rows := l.Rows()
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf(`"%s","%s","%s"`, r.Name, r.Error, r.URL))
	}

	return csvHeader + "\n" + strings.Join(lines, "\n")
}

// Table renders the report as a console table.
func (l *Ledger) Table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("name", "error", "url")

	for _, r := range l.Rows() {
		t.Row(r.Name, r.Error, r.URL)
	}

	return t.String()
}

// Save writes the CSV report to path.
// An empty ledger removes a stale report instead, so that no file means no issues.
func (l *Ledger) Save(path string) error {
	if l.Len() == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing stale report %s: %w", path, err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(l.CSV()), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
