package reading

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/bp"
)

// Create gathers information coming from the add-reading form and
// appends a new reading to the dataset. On validation errors the
// dashboard is re-rendered with per-field messages and nothing is
// persisted.
func (l *Controller) Create(c *fiber.Ctx) error {
	values := FormValues{
		Systolic:  c.FormValue("systolic"),
		Diastolic: c.FormValue("diastolic"),
		Pulse:     c.FormValue("pulse"),
		Notes:     c.FormValue("notes"),
		Timestamp: c.FormValue("timestamp"),
	}

	reading, errs := bp.NewFromForm(values.Systolic, values.Diastolic, values.Pulse, values.Notes, values.Timestamp, time.Now())
	if len(errs) > 0 {
		return l.renderIndex(c, fiber.Map{
			"Errors": errs,
			"Values": values,
		})
	}

	if err := l.repo.Append(reading); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s?saved=1", c.Params("lang")))
}
