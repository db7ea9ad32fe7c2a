package middleware

import (
	"net/http"
)

// RequireDealerLink rejects requests that did not arrive through a dealer
// link, i.e. without a dealer_id query parameter. Presence is all that is
// checked; parsing and the 0 fallback happen at submission time.
func RequireDealerLink(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dealer_id") == "" {
			http.Error(w, `{"error":"invalid link"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
