// Package stats derives trend and summary views from a series of
// readings. All functions expect their input ordered by timestamp
// ascending, which is what the store delivers.
package stats

import (
	"sort"
	"time"

	"github.com/mtorres82/tensio/internal/bp"
)

// Point is one entry of a rolling average series.
type Point struct {
	Timestamp time.Time
	Systolic  float64
	Diastolic float64
}

// Week aggregates the readings of one calendar week. Weeks are ISO-8601
// weeks, starting on Monday, labelled by the Monday date.
type Week struct {
	Start         time.Time
	Count         int
	MeanSystolic  float64
	MeanDiastolic float64
	MinSystolic   int
	MaxSystolic   int
	MinDiastolic  int
	MaxDiastolic  int
}

// RollingAverage computes the simple moving average of systolic and
// diastolic pressure over the last window readings, one point per
// reading. An empty series yields an empty result; a window below 1 is
// treated as 1.
func RollingAverage(readings []bp.Reading, window int) []Point {
	if window < 1 {
		window = 1
	}

	points := make([]Point, 0, len(readings))
	sumSystolic, sumDiastolic := 0, 0
	for i, reading := range readings {
		sumSystolic += reading.Systolic
		sumDiastolic += reading.Diastolic
		if i >= window {
			sumSystolic -= readings[i-window].Systolic
			sumDiastolic -= readings[i-window].Diastolic
		}
		size := min(i+1, window)
		points = append(points, Point{
			Timestamp: reading.Timestamp,
			Systolic:  float64(sumSystolic) / float64(size),
			Diastolic: float64(sumDiastolic) / float64(size),
		})
	}
	return points
}

// WeeklySummary groups readings into ISO Monday-start weeks and
// computes count, means and extremes per group, ordered by week start
// ascending. The counts across all groups add up to len(readings).
func WeeklySummary(readings []bp.Reading) []Week {
	groups := map[time.Time]*Week{}
	for _, reading := range readings {
		start := WeekStart(reading.Timestamp)
		week, ok := groups[start]
		if !ok {
			week = &Week{
				Start:        start,
				MinSystolic:  reading.Systolic,
				MaxSystolic:  reading.Systolic,
				MinDiastolic: reading.Diastolic,
				MaxDiastolic: reading.Diastolic,
			}
			groups[start] = week
		}
		week.Count++
		week.MeanSystolic += float64(reading.Systolic)
		week.MeanDiastolic += float64(reading.Diastolic)
		week.MinSystolic = min(week.MinSystolic, reading.Systolic)
		week.MaxSystolic = max(week.MaxSystolic, reading.Systolic)
		week.MinDiastolic = min(week.MinDiastolic, reading.Diastolic)
		week.MaxDiastolic = max(week.MaxDiastolic, reading.Diastolic)
	}

	weeks := make([]Week, 0, len(groups))
	for _, week := range groups {
		week.MeanSystolic /= float64(week.Count)
		week.MeanDiastolic /= float64(week.Count)
		weeks = append(weeks, *week)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Start.Before(weeks[j].Start)
	})
	return weeks
}

// WeekStart returns the Monday midnight opening the ISO week a moment
// falls into, in the moment's own location.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
