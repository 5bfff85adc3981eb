// Package language negotiates the page language for a request.
//
// The language comes from the lng query parameter, then the i18next cookie,
// then Accept-Language. A lng parameter is remembered in the cookie so links
// without it keep the chosen language. Welsh is only served while the toggle
// reports it enabled.
package language

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"ethub/pkg/requestcontext"
)

const (
	// QueryParam is the query parameter carrying the language choice.
	QueryParam = "lng"
	// CookieName stores the last explicit language choice.
	CookieName = "i18next"

	English = "en"
	Welsh   = "cy"
)

// Toggle reports whether Welsh may be served for a request.
type Toggle interface {
	WelshEnabled(ctx context.Context) bool
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("cy"),
})

// Match maps a raw language value ("cy", "cy-GB", "en-US,en;q=0.8") to "en"
// or "cy". Unknown or malformed input is English.
func Match(raw string) string {
	if raw == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx != 1 {
		return English
	}
	return Welsh
}

// Middleware stores the negotiated language in the request context.
func Middleware(toggle Toggle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			lang := English
			if toggle.WelshEnabled(ctx) {
				lang = negotiate(w, r)
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithLanguage(ctx, lang)))
		})
	}
}

func negotiate(w http.ResponseWriter, r *http.Request) string {
	if raw := r.URL.Query().Get(QueryParam); raw != "" {
		lang := Match(raw)
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    lang,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return Match(c.Value)
	}
	return Match(r.Header.Get("Accept-Language"))
}
