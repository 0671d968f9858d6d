package wire

import (
	"net/http"

	"review-listing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePages(r chi.Router, pageHandler *adaptor.PageHandler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/reviews", http.StatusFound)
	})

	r.Get("/reviews", pageHandler.Handle(pageHandler.Index))
	r.Get("/reviews/{id}", pageHandler.Handle(pageHandler.Show))
}
