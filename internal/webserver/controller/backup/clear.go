package backup

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Clear wipes the whole dataset. There is no undo beyond restoring a
// previously downloaded backup.
func (b *Controller) Clear(c *fiber.Ctx) error {
	if err := b.repo.Clear(); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/")
}
