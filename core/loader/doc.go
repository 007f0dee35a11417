// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its routes
// when loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry and loads enabled features via LoadAll.
package loader
