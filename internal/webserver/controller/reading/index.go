package reading

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/bp"
	"github.com/mtorres82/tensio/internal/stats"
)

// Index renders the dashboard: entry form, most recent readings with
// their derived values, and the weekly summary.
func (l *Controller) Index(c *fiber.Ctx) error {
	return l.renderIndex(c, fiber.Map{
		"Errors": map[string]string{},
		"Values": FormValues{},
		"Saved":  c.Query("saved") == "1",
	})
}

func (l *Controller) renderIndex(c *fiber.Ctx, extra fiber.Map) error {
	readings, skipped, err := l.repo.Load()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	templateVars := fiber.Map{
		"Lang":          c.Params("lang"),
		"Title":         "Tensio",
		"Version":       c.App().Config().AppName,
		"Readings":      latestFirst(readings, l.config.RecentLimit),
		"Total":         len(readings),
		"Skipped":       skipped,
		"Weeks":         stats.WeeklySummary(readings),
		"RollingWindow": l.config.RollingWindow,
	}
	for key, value := range extra {
		templateVars[key] = value
	}

	if err = c.Render("index", templateVars, "layout"); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return nil
}

// latestFirst returns up to limit readings, newest first. The store
// delivers them oldest first.
func latestFirst(readings []bp.Reading, limit int) []bp.Reading {
	recent := make([]bp.Reading, 0, min(limit, len(readings)))
	for i := len(readings) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, readings[i])
	}
	return recent
}
