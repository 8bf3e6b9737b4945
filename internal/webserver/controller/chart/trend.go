package chart

import (
	"fmt"
	"log"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/bp"
	"github.com/mtorres82/tensio/internal/stats"
)

// Trend renders systolic and diastolic pressure over time as a line
// chart, with a rolling average series overlaid on each.
func (h *Controller) Trend(c *fiber.Ctx) error {
	readings, _, err := h.repo.Load()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	window := h.config.RollingWindow
	rolling := stats.RollingAverage(readings, window)

	labels := make([]string, len(readings))
	systolic := make([]opts.LineData, len(readings))
	diastolic := make([]opts.LineData, len(readings))
	avgSystolic := make([]opts.LineData, len(rolling))
	avgDiastolic := make([]opts.LineData, len(rolling))
	for i, reading := range readings {
		labels[i] = reading.Timestamp.Format(bp.TimeFormat)
		systolic[i] = opts.LineData{Value: reading.Systolic}
		diastolic[i] = opts.LineData{Value: reading.Diastolic}
		avgSystolic[i] = opts.LineData{Value: rolling[i].Systolic}
		avgDiastolic[i] = opts.LineData{Value: rolling[i].Diastolic}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Systolic & diastolic over time",
			Subtitle: fmt.Sprintf("mmHg, with a %d-reading rolling average", window),
		}),
	)
	line.SetXAxis(labels).
		AddSeries("Systolic", systolic).
		AddSeries("Diastolic", diastolic).
		AddSeries(fmt.Sprintf("Systolic (%d-reading avg)", window), avgSystolic).
		AddSeries(fmt.Sprintf("Diastolic (%d-reading avg)", window), avgDiastolic)

	c.Type("html")
	return line.Render(c.Response().BodyWriter())
}
