package webserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

var supportedLanguages = []string{"en", "es"}

func routes(app *fiber.App, controllers Controllers) {
	cssFS, _ := fs.Sub(embedded, "embedded/css")

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Get("/download", controllers.Backup.Download)
	app.Post("/clear", controllers.Backup.Clear)

	app.Get("/charts/trend", controllers.Charts.Trend)
	app.Get("/charts/scatter", controllers.Charts.Scatter)

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		c.Locals("Lang", c.Params("lang"))
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	langGroup.Get("/restore", controllers.Backup.RestoreForm)
	langGroup.Post("/restore", controllers.Backup.Restore)

	langGroup.Get("/", controllers.Readings.Index)
	langGroup.Post("/", controllers.Readings.Create)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(fmt.Sprintf("/%s", chooseBestLanguage(c)))
	})
}
