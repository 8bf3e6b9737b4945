package webserver

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/bp"
	"github.com/mtorres82/tensio/internal/i18n"
	"github.com/mtorres82/tensio/internal/webserver/infrastructure"
)

//go:embed embedded
var embedded embed.FS

// Repository is the full set of dataset operations the web layer needs.
// Controllers depend on narrower slices of it.
type Repository interface {
	Load() ([]bp.Reading, int, error)
	Append(r bp.Reading) error
	Export() ([]byte, error)
	Restore(upload io.Reader) (added, total int, err error)
	Clear() error
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, repo Repository) *fiber.App {
	translationsFS, err := fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}

	printers, err := i18n.Printers(translationsFS)
	if err != nil {
		log.Fatal(err)
	}

	viewsFS, err := fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      cfg.Version,
		ErrorHandler: errorHandler,
	})

	routes(app, SetupControllers(cfg, repo, printers))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	err = c.Status(code).Render(
		fmt.Sprintf("errors/%d", code),
		fiber.Map{
			"Lang":    chooseBestLanguage(c),
			"Title":   "Tensio",
			"Version": c.App().Config().AppName,
		},
		"layout")

	if err != nil {
		log.Println(err)
		// In case the Render fails
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return nil
}
