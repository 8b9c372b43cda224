// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no filesystem or terminal dependencies;
// everything that touches disk arrives through a driven port.
package services
