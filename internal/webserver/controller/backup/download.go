package backup

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Download serves the dataset as a CSV attachment, byte-identical to
// the backing file.
func (b *Controller) Download(c *fiber.Ctx) error {
	blob, err := b.repo.Export()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	fileName := fmt.Sprintf("bp_data_%s.csv", time.Now().Format("20060102"))

	c.Response().Header.Set(fiber.HeaderContentType, "text/csv")
	c.Response().Header.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(blob)
}
