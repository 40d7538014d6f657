package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
)

type Row struct {
	Time          string `csv:"time"`
	Network       string `csv:"network"`
	BlockHeight   uint64 `csv:"block_height"`
	BlockExplorer string `csv:"block_explorer"`
}

func NewRow(t time.Time, s metadata.State) Row {
	return Row{
		Time:          t.UTC().Format(time.RFC3339),
		Network:       s.Network.String(),
		BlockHeight:   s.BlockHeight,
		BlockExplorer: s.BlockExplorer.String(),
	}
}

// Recorder appends state snapshots to a tab-separated file. The header is
// written once, before the first row of an empty file.
type Recorder struct {
	mu            sync.Mutex
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Open appends to the file at path, creating it if needed.
func Open(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	return &Recorder{
		w:             f,
		closer:        f,
		headerWritten: info.Size() > 0,
	}, nil
}

func (r *Recorder) Record(rows ...Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := newWriter(r.w)
	var err error
	if r.headerWritten {
		err = gocsv.MarshalCSVWithoutHeaders(rows, w)
	} else {
		err = gocsv.MarshalCSV(rows, w)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	r.headerWritten = true
	return nil
}

func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func Read(in io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.UnmarshalCSV(newReader(in), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return rows, nil
}

// Use tabs as separators.
func newWriter(out io.Writer) *gocsv.SafeCSVWriter {
	w := csv.NewWriter(out)
	w.Comma = '\t'
	return gocsv.NewSafeCSVWriter(w)
}

func newReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.Comma = '\t'
	return r
}
