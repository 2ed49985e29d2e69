// Package loader registers HTTP features and mounts their routes.
//
// A feature bundles a service and its handler behind the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. LoadAll skips disabled
// features, rejects duplicate names and returns the names it loaded, which
// cmd/start.go logs at startup.
package loader
