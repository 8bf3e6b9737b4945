package backup

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/store"
)

// RestoreForm renders the upload page.
func (b *Controller) RestoreForm(c *fiber.Ctx) error {
	return b.renderRestore(c, fiber.StatusOK, fiber.Map{})
}

// Restore merges an uploaded CSV backup into the dataset. A file with
// the wrong columns or any malformed row rejects the whole upload and
// leaves the dataset untouched.
func (b *Controller) Restore(c *fiber.Ctx) error {
	lang := c.Params("lang")

	file, err := c.FormFile("filename")
	if err != nil {
		return b.renderRestore(c, fiber.StatusBadRequest, fiber.Map{
			"Error": b.printers[lang].Sprintf("Select a CSV file to restore."),
		})
	}

	upload, err := file.Open()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}
	defer upload.Close()

	added, total, err := b.repo.Restore(upload)
	if errors.Is(err, store.ErrSchemaMismatch) {
		return b.renderRestore(c, fiber.StatusBadRequest, fiber.Map{
			"Error": b.printers[lang].Sprintf("The uploaded file doesn't have the expected columns timestamp, systolic, diastolic, pulse, notes."),
		})
	}
	if err != nil {
		return b.renderRestore(c, fiber.StatusBadRequest, fiber.Map{
			"Error": b.printers[lang].Sprintf("The uploaded file couldn't be read: %s. Nothing was imported.", err),
		})
	}

	return b.renderRestore(c, fiber.StatusOK, fiber.Map{
		"Message": b.printers[lang].Sprintf("Imported %d new readings, %d in total.", added, total),
	})
}

func (b *Controller) renderRestore(c *fiber.Ctx, status int, extra fiber.Map) error {
	templateVars := fiber.Map{
		"Lang":    c.Params("lang"),
		"Title":   "Tensio",
		"Version": c.App().Config().AppName,
	}
	for key, value := range extra {
		templateVars[key] = value
	}

	if err := c.Status(status).Render("restore", templateVars, "layout"); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return nil
}
