package reqlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DailyFile appends log blocks to one file per calendar day, named
// api-requests-YYYY-MM-DD.log inside a fixed directory. Appends are
// serialized with a mutex so concurrent requests never interleave lines.
type DailyFile struct {
	mu   sync.Mutex
	dir  string
	day  string
	file *os.File
	now  func() time.Time
}

// NewDailyFile creates the logs directory if absent and returns a writer
// that rotates by date on each append.
func NewDailyFile(dir string) (*DailyFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create logs directory %s", dir)
	}
	return &DailyFile{dir: dir, now: time.Now}, nil
}

// Append writes one record block, prefixed with a timestamp, to the file
// for the current day, opening or rotating it first when needed.
func (d *DailyFile) Append(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	day := now.Format("2006-01-02")
	if d.file == nil || day != d.day {
		if d.file != nil {
			_ = d.file.Close()
		}
		name := filepath.Join(d.dir, fmt.Sprintf("api-requests-%s.log", day))
		file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", name)
		}
		d.file = file
		d.day = day
	}

	_, err := fmt.Fprintf(d.file, "%s - %s\n", now.Format("2006-01-02 15:04:05"), text)
	return errors.Wrap(err, "append log record")
}

// Close releases the underlying file handle.
func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
