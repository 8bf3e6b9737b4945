package chart

import (
	"log"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gofiber/fiber/v2"
)

// Scatter renders one point per reading, systolic against diastolic,
// to make outliers and clusters easy to spot.
func (h *Controller) Scatter(c *fiber.Ctx) error {
	readings, _, err := h.repo.Load()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	points := make([]opts.ScatterData, len(readings))
	for i, reading := range readings {
		points[i] = opts.ScatterData{Value: []int{reading.Systolic, reading.Diastolic}}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Systolic vs diastolic",
			Subtitle: "each point is a reading (mmHg)",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Systolic", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Diastolic", Type: "value"}),
	)
	scatter.AddSeries("Readings", points)

	c.Type("html")
	return scatter.Render(c.Response().BodyWriter())
}
