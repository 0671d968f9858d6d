package adaptor

import (
	"bytes"
	"net/http"

	"review-listing/internal/view"

	"go.uber.org/zap"
)

// DefaultLayout is the layout every page action is wrapped in
const DefaultLayout = "template"

// Action is a page controller action. It only builds and returns the content
// view; the template controller renders the layout around it afterwards.
type Action func(r *http.Request) (*view.View, error)

// templateController renders actions inside a shared layout
type templateController struct {
	views  *view.Manager
	layout string
	vars   func(r *http.Request, content *view.View) map[string]any
	log    *zap.Logger
}

// Handle adapts an action to an http.HandlerFunc with automatic rendering
func (c *templateController) Handle(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := action(r)
		if err != nil {
			c.renderError(w, r, statusFor(err), err)
			return
		}
		c.render(w, r, http.StatusOK, content)
	}
}

func (c *templateController) render(w http.ResponseWriter, r *http.Request, status int, content *view.View) {
	var buf bytes.Buffer
	if err := c.views.RenderLayout(&buf, c.layout, content, c.vars(r, content)); err != nil {
		c.log.Error("Failed to render view",
			zap.Error(err),
			zap.String("view", content.Name()),
			zap.String("path", r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (c *templateController) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	message := "Something went wrong on our side."
	switch status {
	case http.StatusNotFound:
		message = "We could not find that page."
		c.log.Warn("Page not found", zap.Error(err), zap.String("path", r.URL.Path))
	case http.StatusBadRequest:
		message = "That request did not look right."
		c.log.Warn("Bad page request", zap.Error(err), zap.String("path", r.URL.Path))
	default:
		c.log.Error("Page action failed", zap.Error(err), zap.String("path", r.URL.Path))
	}

	content := view.New("error").
		Set("status", status).
		Set("status_text", http.StatusText(status)).
		Set("message", message)

	c.render(w, r, status, content)
}
