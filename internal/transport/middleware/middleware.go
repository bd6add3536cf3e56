// Package middleware holds the HTTP middleware shared by every route: request
// ids, access logging, panic recovery, CORS, authentication and throttling.
package middleware

import (
	"context"
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost:
// Chain(a, b)(h) serves as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range mws {
			h = mws[len(mws)-1-i](h)
		}
		return h
	}
}

// accessRecord is shared between Logger and the middleware it wraps. Inner
// middleware derive new contexts that Logger cannot see, so they report what
// they learn through this pointer instead.
type accessRecord struct {
	userID int64
}

type accessRecordKey struct{}

func withAccessRecord(ctx context.Context) (context.Context, *accessRecord) {
	rec := &accessRecord{}
	return context.WithValue(ctx, accessRecordKey{}, rec), rec
}

// noteUser records the authenticated user for the access log, if any.
func noteUser(ctx context.Context, userID int64) {
	if rec, ok := ctx.Value(accessRecordKey{}).(*accessRecord); ok {
		rec.userID = userID
	}
}
