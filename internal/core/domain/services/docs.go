// Package services contains stateless domain services that operate across
// aggregates. FulfillmentProjector derives the warehouse pick-list view from
// a snapshot of orders as a pure, side-effect-free projection.
package services
