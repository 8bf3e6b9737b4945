package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/mtorres82/tensio/internal/bp"
	"github.com/spf13/afero"
)

// Header is the dataset file schema, in column order.
var Header = []string{"timestamp", "systolic", "diastolic", "pulse", "notes"}

// ErrSchemaMismatch is returned by Restore when the uploaded file does
// not carry the expected header row.
var ErrSchemaMismatch = errors.New("unexpected columns, want timestamp,systolic,diastolic,pulse,notes")

// CSV persists readings to a flat CSV file. The file is the single
// source of truth; every operation is a full load-modify-persist cycle
// and no lock protects the file, as the app is single-user and
// single-process.
type CSV struct {
	fs   afero.Fs
	path string
}

func NewCSV(fs afero.Fs, path string) *CSV {
	return &CSV{fs: fs, path: path}
}

// Load reads the whole dataset sorted by timestamp ascending, stable
// for equal timestamps. A missing file is a first run, not an error.
// Malformed rows are skipped and counted so one bad row can't block
// the rest of the file.
func (s *CSV) Load() ([]bp.Reading, int, error) {
	file, err := s.fs.Open(s.path)
	if os.IsNotExist(err) {
		return []bp.Reading{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	readings, skipped, err := parse(file, false)
	if err != nil {
		return nil, 0, err
	}
	sortByTimestamp(readings)
	return readings, skipped, nil
}

// Append writes one reading to the end of the file, creating it with a
// header row if needed. Existing contents are left untouched.
func (s *CSV) Append(r bp.Reading) error {
	info, err := s.fs.Stat(s.path)
	needsHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	file, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if needsHeader {
		if err := writer.Write(Header); err != nil {
			return err
		}
	}
	if err := writer.Write(record(r)); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// Overwrite replaces the whole file with the given readings.
func (s *CSV) Overwrite(readings []bp.Reading) error {
	return afero.WriteFile(s.fs, s.path, marshal(readings), 0644)
}

// Export returns the dataset for download, byte-identical to the
// backing file. A missing file exports as a header-only CSV.
func (s *CSV) Export() ([]byte, error) {
	blob, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return marshal(nil), nil
	}
	return blob, err
}

// Restore merges an uploaded dataset of the same schema into the
// current one. The whole upload is rejected on a header mismatch or any
// malformed row, leaving the existing dataset untouched. Merging is a
// union that collapses rows equal in all five columns; rows differing
// only in notes are both kept, so a restore never discards an edit.
// Returns how many rows were added and the new total.
func (s *CSV) Restore(upload io.Reader) (added, total int, err error) {
	incoming, _, err := parse(upload, true)
	if err != nil {
		return 0, 0, err
	}

	existing, skipped, err := s.Load()
	if err != nil {
		return 0, 0, err
	}
	if skipped > 0 {
		log.Printf("dropping %d malformed rows while rewriting the dataset", skipped)
	}

	merged := existing
	for _, candidate := range incoming {
		if !contains(merged, candidate) {
			merged = append(merged, candidate)
		}
	}
	sortByTimestamp(merged)

	if err := s.Overwrite(merged); err != nil {
		return 0, 0, err
	}
	return len(merged) - len(existing), len(merged), nil
}

// Clear wipes the dataset down to its header row.
func (s *CSV) Clear() error {
	return s.Overwrite(nil)
}

// parse reads CSV rows into readings. In strict mode any malformed row
// aborts with an error; otherwise bad rows are skipped and counted.
func parse(source io.Reader, strict bool) ([]bp.Reading, int, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []bp.Reading{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	if !equalHeader(header) {
		return nil, 0, ErrSchemaMismatch
	}

	readings := []bp.Reading{}
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err == nil {
			var reading bp.Reading
			if reading, err = fromRecord(row); err == nil {
				readings = append(readings, reading)
				continue
			}
		}
		if strict {
			return nil, 0, fmt.Errorf("row %d: %w", line, err)
		}
		skipped++
		log.Printf("skipping malformed row %d: %s", line, err)
	}
	return readings, skipped, nil
}

func fromRecord(row []string) (bp.Reading, error) {
	if len(row) != len(Header) {
		return bp.Reading{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(row))
	}

	timestamp, err := bp.ParseTime(row[0])
	if err != nil {
		return bp.Reading{}, fmt.Errorf("unparseable timestamp %q", row[0])
	}
	systolic, err := strconv.Atoi(row[1])
	if err != nil {
		return bp.Reading{}, fmt.Errorf("non-numeric systolic %q", row[1])
	}
	diastolic, err := strconv.Atoi(row[2])
	if err != nil {
		return bp.Reading{}, fmt.Errorf("non-numeric diastolic %q", row[2])
	}
	pulse := 0
	if row[3] != "" {
		if pulse, err = strconv.Atoi(row[3]); err != nil {
			return bp.Reading{}, fmt.Errorf("non-numeric pulse %q", row[3])
		}
	}

	return bp.Reading{
		Timestamp: timestamp,
		Systolic:  systolic,
		Diastolic: diastolic,
		Pulse:     pulse,
		Notes:     row[4],
	}, nil
}

func record(r bp.Reading) []string {
	pulse := ""
	if r.Pulse != 0 {
		pulse = strconv.Itoa(r.Pulse)
	}
	return []string{
		r.Timestamp.Format(bp.TimeFormat),
		strconv.Itoa(r.Systolic),
		strconv.Itoa(r.Diastolic),
		pulse,
		r.Notes,
	}
}

func marshal(readings []bp.Reading) []byte {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	writer.Write(Header)
	for _, reading := range readings {
		writer.Write(record(reading))
	}
	writer.Flush()
	return buffer.Bytes()
}

func equalHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, column := range Header {
		if row[i] != column {
			return false
		}
	}
	return true
}

func contains(readings []bp.Reading, candidate bp.Reading) bool {
	for _, reading := range readings {
		if reading.Equal(candidate) {
			return true
		}
	}
	return false
}

func sortByTimestamp(readings []bp.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})
}
