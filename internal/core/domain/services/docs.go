// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel matching system. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RouteMatcher: A domain service deciding whether a parcel's pickup and
//     dropoff fall within a courier's route radii
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
