package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		return template.HTML(printers[lang].Sprintf(key, values...))
	})

	engine.AddFunc("datetime", func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	})

	engine.AddFunc("day", func(t time.Time) string {
		return t.Format("2006-01-02")
	})

	engine.AddFunc("decimal", func(value float64) string {
		return strconv.FormatFloat(value, 'f', 1, 64)
	})

	return engine, nil
}
