package syncgate

import (
	"net/http"
	"roomBooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

// New guards routes that need the calendar provider. When sync is disabled
// they answer 503 without reaching the handler.
func New(enabled bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if enabled {
			return next
		}

		fn := func(w http.ResponseWriter, r *http.Request) {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("calendar sync is not configured"))
		}

		return http.HandlerFunc(fn)
	}
}
