// Package log defines the logging abstraction shared by the library
// packages, with a zerolog-backed adapter for the CLI and a no-op
// implementation for tests and embedders that bring their own logging.
//
// Library code takes a [Logger] and never logs through a global; passing
// nil to entry points that accept a logger selects the no-op
// implementation.
package log
