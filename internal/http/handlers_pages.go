package httpx

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/core"
)

// pageShell is the server-rendered frame the SPA boots from. The body is
// identical for every visitor of a path, which is what makes the
// whole-page cache sound.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<div id="app" data-page="{{.Path}}"></div>
<script src="/static/js/app.js" defer></script>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageShell))

// PageHandlers serves the HTML shells behind the access gate. Rendered
// bodies are cached by path in Redis; a write to any entity shown on a
// page invalidates that path.
type PageHandlers struct {
	Cache  core.PageCache // optional; nil disables caching
	Logger *slog.Logger
}

func (h *PageHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Page returns a handler serving the shell for one path.
func (h *PageHandlers) Page(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if h.Cache != nil {
			if body, err := h.Cache.GetPage(r.Context(), path); err == nil && body != nil {
				writePage(w, body, "hit")
				return
			}
		}

		var buf bytes.Buffer
		data := struct {
			Title string
			Path  string
		}{Title: title, Path: path}
		if err := pageTemplate.Execute(&buf, data); err != nil {
			h.logger().ErrorContext(r.Context(), "page render failed", "path", path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if h.Cache != nil {
			// Best effort: a failed cache write costs one render, not the request.
			if err := h.Cache.SetPage(r.Context(), path, buf.Bytes()); err != nil {
				h.logger().DebugContext(r.Context(), "page cache write failed", "path", path, "error", err)
			}
		}

		writePage(w, buf.Bytes(), "miss")
	}
}

func writePage(w http.ResponseWriter, body []byte, cacheState string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Page-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		// Client gone; nothing to recover.
		return
	}
}
