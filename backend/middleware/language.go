package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var supportedLocales = []string{"en", "de", "fr"}

// LanguageMiddleware resolves the request locale from Accept-Language and
// stores it in locals. Unknown locales fall back to English.
func LanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := "en"
		header := c.Get("Accept-Language")
		for _, part := range strings.Split(header, ",") {
			tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
			if len(tag) > 2 {
				tag = tag[:2]
			}
			if isSupported(tag) {
				locale = tag
				break
			}
		}
		c.Locals("locale", locale)
		c.Set("Content-Language", locale)
		return c.Next()
	}
}

func isSupported(tag string) bool {
	for _, l := range supportedLocales {
		if l == tag {
			return true
		}
	}
	return false
}
