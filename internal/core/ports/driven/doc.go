// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TreeReader: Collects documents from a source tree
//   - TreeWriter: Materializes documents back into a tree
//   - BundleStore: Reads and writes the bundle artifact itself
//   - ManifestStore: Loads and saves the expected-path manifest
//   - TreeWatcher: Emits debounced change events for a source tree
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
