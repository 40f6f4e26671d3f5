package view

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// PageMeta is the document-level metadata a route entry point declares.
// Routes declare it as a package-level value; the base layout writes it into
// the document head on every render, so nothing is mutated globally.
type PageMeta struct {
	Title string
}

// supportedLanguages lists the UI languages, the first being the fallback.
var supportedLanguages = []language.Tag{
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// Language negotiates the document language from the Accept-Language header
// and returns its base code (for example "en").
func Language(c echo.Context) string {
	tags, _, err := language.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		tags = supportedLanguages[:1]
	}
	tag, _, _ := languageMatcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}
