// Package metadata records who is calling: client IP, raw User-Agent and a
// short device label that audit events carry.
package metadata

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

// Client is the caller description stored on the request context.
type Client struct {
	IP        string
	UserAgent string
	Device    string
}

type clientKey struct{}

// ClientMetadata stores a Client for every request. Mount it before anything
// that emits audit events.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := WithClient(r.Context(), Client{
			IP:        ClientIPFromRequest(r),
			UserAgent: ua,
			Device:    DeviceLabel(ua),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

func FromContext(ctx context.Context) Client {
	c, _ := ctx.Value(clientKey{}).(Client)
	return c
}

func GetClientIP(ctx context.Context) string  { return FromContext(ctx).IP }
func GetUserAgent(ctx context.Context) string { return FromContext(ctx).UserAgent }
func GetDevice(ctx context.Context) string    { return FromContext(ctx).Device }

// DeviceLabel summarises a User-Agent as "<browser> on <os>", suffixed with
// "(mobile)" for phones. Crawlers are "bot"; an empty header gives "".
func DeviceLabel(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	ua := useragent.New(userAgent)
	if ua.Bot() {
		return "bot"
	}
	name, _ := ua.Browser()
	parts := []string{name}
	if os := ua.OS(); os != "" {
		parts = append(parts, "on", os)
	}
	if ua.Mobile() {
		parts = append(parts, "(mobile)")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ClientIPFromRequest prefers the first X-Forwarded-For hop, then X-Real-IP,
// then the socket address.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
