package adapter

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the message endpoint on the given router.
func RegisterRoutes(r chi.Router, a *Adapter) {
	r.Post("/api/messages", a.ProcessActivity)
}
