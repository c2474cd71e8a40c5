package server

import "net/http"

func adminAuthMiddleware(admin *AdminStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if _, err := admin.FromSession(r.Context(), cookie.Value); err != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
