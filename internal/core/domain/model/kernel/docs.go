// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated unique identifier for entities and aggregates
//   - Phone: normalized customer phone number, the natural key for customers
//   - SaleNumber: human-readable unique sale code ("VTA-" + six digit sequence)
//
// All value objects are immutable, compare by value, and distinguish a usable
// instance from an accidental zero value through their Validate methods.
package kernel
