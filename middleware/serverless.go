package middleware

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// La plataforma antepone '/.netlify/functions/<fn>' a las rutas invocadas
var functionPrefix = regexp.MustCompile(`^/\.netlify/functions/[^/]+`)

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// NormalizePath deja la ruta tal como la esperan los handlers: sin el
// prefijo de la función, sin slashes repetidos y sin sufijos de índice.
// Es idempotente.
func NormalizePath(path string) string {
	path = functionPrefix.ReplaceAllString(path, "")
	path = repeatedSlashes.ReplaceAllString(path, "/")

	for {
		trimmed := path
		if strings.HasSuffix(trimmed, "/index") {
			trimmed = strings.TrimSuffix(trimmed, "/index")
		} else if strings.HasSuffix(trimmed, ".html") {
			trimmed = strings.TrimSuffix(trimmed, ".html")
		} else if strings.HasSuffix(trimmed, ".htm") {
			trimmed = strings.TrimSuffix(trimmed, ".htm")
		}
		if len(trimmed) > 1 {
			trimmed = strings.TrimSuffix(trimmed, "/")
		}
		if trimmed == path {
			break
		}
		path = trimmed
	}

	if path == "" {
		path = "/"
	}
	return path
}

// NormalizeRawURL reescribe el path de la URL absoluta que acompaña a la
// petición. Si no hay URL usa una base de relleno; si no se puede parsear
// la regresa sin cambios.
func NormalizeRawURL(rawURL, pathname string) string {
	if rawURL == "" {
		u := &url.URL{Scheme: "https", Host: "placeholder.local"}
		u.Path = pathname
		return u.String()
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Path = pathname
	return u.String()
}

// PathNormalizer reescribe la ruta de cada petición antes del enrutado.
func PathNormalizer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		normalized := NormalizePath(c.Path())
		if normalized != c.Path() {
			c.Path(normalized)
		}
		return c.Next()
	}
}
