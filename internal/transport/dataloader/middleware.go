package dataloader

import "net/http"

// Middleware installs a fresh set of Loaders in every request context.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
