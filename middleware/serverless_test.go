package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"root", "/", "/"},
		{"empty", "", "/"},
		{"plain route", "/almacenes", "/almacenes"},
		{"function prefix", "/.netlify/functions/api/almacenes", "/almacenes"},
		{"function prefix root", "/.netlify/functions/api", "/"},
		{"function prefix trailing slash", "/.netlify/functions/api/", "/"},
		{"repeated slashes", "/articulos//TRU-TAL-001", "/articulos/TRU-TAL-001"},
		{"trailing slash", "/articulos/", "/articulos"},
		{"index suffix", "/catalogos/index", "/catalogos"},
		{"html suffix", "/catalogos.html", "/catalogos"},
		{"htm suffix", "/catalogos.htm", "/catalogos"},
		{"index with trailing slash", "/catalogos/index/", "/catalogos"},
		{"prefix and suffix combined", "/.netlify/functions/api//inventario/conteos-todos/", "/inventario/conteos-todos"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePath(tc.input))
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{
		"/",
		"",
		"/almacenes",
		"/.netlify/functions/api/articulos/TRU-TAL-001",
		"/articulos//x///y",
		"/catalogos/marcas/buscar/",
		"/conteos/index",
		"/conteos.html",
		"/index",
	}

	for _, input := range inputs {
		once := NormalizePath(input)
		assert.Equal(t, once, NormalizePath(once), "input %q", input)
	}
}

func TestNormalizePathStripsSinglePrefix(t *testing.T) {
	assert.Equal(t, "/x", NormalizePath("/.netlify/functions/api/x"))
	// solo se elimina una ocurrencia del prefijo por pasada
	assert.Equal(t, "/.netlify/functions/api/x", NormalizePath("/.netlify/functions/api/.netlify/functions/api/x"))
}

func TestNormalizeRawURL(t *testing.T) {
	assert.Equal(t, "https://placeholder.local/almacenes", NormalizeRawURL("", "/almacenes"))

	assert.Equal(t,
		"https://example.com/articulos?x=1",
		NormalizeRawURL("https://example.com/.netlify/functions/api/articulos?x=1", "/articulos"),
	)

	// URL que no parsea se regresa sin cambios
	malformed := "https://example.com/%zz"
	assert.Equal(t, malformed, NormalizeRawURL(malformed, "/x"))
}
