// Package kernel contains shared value objects used across all domain
// aggregates: UUID identities and geographic coordinates with great-circle
// distance. Every type in this package is immutable and constructor-guarded;
// zero values fail validation.
package kernel
