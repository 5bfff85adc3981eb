// Package requestcontext carries request-scoped values between middleware and
// services without importing net/http.
//
//	ctx = requestcontext.WithUserID(ctx, "user-1")
//	ctx = requestcontext.WithLanguage(ctx, "cy")
//	lang := requestcontext.Language(ctx)
package requestcontext

import (
	"context"
	"time"
)

type key int

const (
	userIDKey key = iota
	sessionIDKey
	requestIDKey
	requestTimeKey
	languageKey
)

// DefaultLanguage applies when no language was negotiated for the request.
const DefaultLanguage = "en"

func stringValue(ctx context.Context, k key) string {
	v, _ := ctx.Value(k).(string)
	return v
}

// UserID is the authenticated IdAM user, or "" outside RequireAuth.
func UserID(ctx context.Context) string { return stringValue(ctx, userIDKey) }

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func SessionID(ctx context.Context) string { return stringValue(ctx, sessionIDKey) }

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func RequestID(ctx context.Context) string { return stringValue(ctx, requestIDKey) }

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Language is "en" or "cy".
func Language(ctx context.Context) string {
	if lang := stringValue(ctx, languageKey); lang != "" {
		return lang
	}
	return DefaultLanguage
}

func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// Now returns the time fixed at the start of the request, or the wall clock
// for background work.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey).(time.Time); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey, t)
}
