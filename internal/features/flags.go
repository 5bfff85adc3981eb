// Package features exposes feature toggles to request handlers.
package features

import "context"

// Flags answers feature questions for the current request.
type Flags interface {
	WelshEnabled(ctx context.Context) bool
}

// StaticFlags serves fixed values, typically from configuration.
type StaticFlags struct {
	Welsh bool
}

func (f StaticFlags) WelshEnabled(context.Context) bool {
	return f.Welsh
}
