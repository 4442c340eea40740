// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition covering the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// AddressUoW manages transactions for address-only operations,
	// such as the geocode backfill.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// ParcelUoW manages transactions spanning addresses and parcels.
	// Used by parcel creation, which registers both pickup and dropoff
	// addresses alongside the parcel row.
	ParcelUoW interface {
		TxManager
		AddressRepoFactory
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RouteUoW manages transactions spanning addresses and couriers.
	// Used when a courier declares or replaces their planned route.
	RouteUoW interface {
		TxManager
		AddressRepoFactory
		CourierRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// MatchingUoW manages transactions for the candidate search, which
	// reads pending parcels and persists the courier's sticky route.
	MatchingUoW interface {
		TxManager
		AddressRepoFactory
		CourierRepoFactory
		ParcelRepoFactory
	}

	// MatchingUoWFactory creates new matching unit of work instances.
	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	// DispatchUoW manages transactions for delivery assignment, which
	// must update the parcel, the courier and the new delivery atomically.
	DispatchUoW interface {
		TxManager
		CourierRepoFactory
		ParcelRepoFactory
		DeliveryRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// LifecycleUoW manages transactions for joint parcel/delivery
	// transitions (pickup, delivery, cancellation).
	LifecycleUoW interface {
		TxManager
		ParcelRepoFactory
		DeliveryRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}
)
