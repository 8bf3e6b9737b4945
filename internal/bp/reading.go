package bp

import (
	"math"
	"strconv"
	"time"
)

// TimeFormat is how timestamps are written to the dataset file.
const TimeFormat = "2006-01-02 15:04:05"

// formTimeFormat is what datetime-local inputs submit.
const formTimeFormat = "2006-01-02T15:04"

// Clinically plausible input ranges, matching the limits the entry form
// advertises. The classifier itself accepts anything.
const (
	MinSystolic  = 50
	MaxSystolic  = 260
	MinDiastolic = 30
	MaxDiastolic = 180
	MinPulse     = 20
	MaxPulse     = 220
)

const maxNotesLength = 500

// Reading is one blood pressure log entry. Pulse and Notes are
// optional; a zero Pulse means it was not recorded.
type Reading struct {
	Timestamp time.Time
	Systolic  int
	Diastolic int
	Pulse     int
	Notes     string
}

// Category is derived from the stored values on every call, never
// persisted, so a threshold change can't leave stale labels behind.
func (r Reading) Category() Category {
	return Classify(r.Systolic, r.Diastolic)
}

// PulsePressure is the difference between systolic and diastolic pressure.
func (r Reading) PulsePressure() int {
	return r.Systolic - r.Diastolic
}

// MAP is the mean arterial pressure estimate, diastolic plus a third of
// the pulse pressure, rounded to one decimal.
func (r Reading) MAP() float64 {
	return math.Round((float64(r.Diastolic)+float64(r.PulsePressure())/3)*10) / 10
}

// Equal reports whether two readings match in every stored column.
// This is the identity used when collapsing duplicates on restore.
func (r Reading) Equal(other Reading) bool {
	return r.Timestamp.Equal(other.Timestamp) &&
		r.Systolic == other.Systolic &&
		r.Diastolic == other.Diastolic &&
		r.Pulse == other.Pulse &&
		r.Notes == other.Notes
}

// NewFromForm builds a Reading from raw form values, validating each
// field. It returns the reading along with a map of per-field error
// messages; the reading is only usable when the map is empty. An empty
// timestamp defaults to now.
func NewFromForm(systolic, diastolic, pulse, notes, timestamp string, now time.Time) (Reading, map[string]string) {
	errs := map[string]string{}
	r := Reading{Timestamp: now, Notes: notes}

	r.Systolic = parseBounded(systolic, "systolic", MinSystolic, MaxSystolic, true, errs)
	r.Diastolic = parseBounded(diastolic, "diastolic", MinDiastolic, MaxDiastolic, true, errs)
	r.Pulse = parseBounded(pulse, "pulse", MinPulse, MaxPulse, false, errs)

	if len(notes) > maxNotesLength {
		errs["notes"] = "Notes cannot be longer than 500 characters"
	}

	if timestamp != "" {
		ts, err := ParseTime(timestamp)
		if err != nil {
			errs["timestamp"] = "Incorrect date and time"
		} else {
			r.Timestamp = ts
		}
	}

	return r, errs
}

// ParseTime accepts the timestamp formats found in dataset files and
// form submissions. No timezone normalization is applied.
func ParseTime(value string) (time.Time, error) {
	var err error
	var ts time.Time
	for _, layout := range []string{
		TimeFormat,
		time.RFC3339,
		"2006-01-02T15:04:05",
		formTimeFormat,
		"2006-01-02",
	} {
		if ts, err = time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

func parseBounded(value, field string, min, max int, required bool, errs map[string]string) int {
	if value == "" {
		if required {
			errs[field] = "This field is required"
		}
		return 0
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		errs[field] = "Must be a whole number"
		return 0
	}
	if number < min || number > max {
		errs[field] = "Value out of range"
		return 0
	}
	return number
}
