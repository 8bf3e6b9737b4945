package webserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// chooseBestLanguage matches the request's Accept-Language header
// against the languages the app ships, falling back to the first one.
func chooseBestLanguage(c *fiber.Ctx) string {
	acceptHeader := c.Get(fiber.HeaderAcceptLanguage)
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}
	languageMatcher := language.NewMatcher(tags)

	t, _, _ := language.ParseAcceptLanguage(acceptHeader)
	tag, _, _ := languageMatcher.Match(t...)
	baseLang, _ := tag.Base()
	return baseLang.String()
}
