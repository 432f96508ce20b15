// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of storage, calculator, handlers, routers,
// and HTTP server instances, seeds the working list from configuration, and
// keeps the main package focused on CLI parsing and orchestration.
package application
