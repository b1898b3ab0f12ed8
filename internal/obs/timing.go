// Package obs carries the request id through contexts and logs how long
// service operations take.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the id stored by WithRequestID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts a timer for op and returns the func that stops it. Call it with
// defer and the address of a named error result:
//
//	defer obs.Time(ctx, "orders.List")(&err)
//
// The line records status=ok or status=error along with the error.
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		took := time.Since(start).Round(time.Millisecond)
		reqID := RequestID(ctx)

		if errp == nil || *errp == nil {
			log.Printf("req_id=%s op=%s status=ok took=%s", reqID, op, took)
			return
		}
		log.Printf("req_id=%s op=%s status=error took=%s err=%v", reqID, op, took, *errp)
	}
}
