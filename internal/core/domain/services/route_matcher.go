package services

import (
	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/kernel"
)

// RouteMatcher is a domain service that decides whether a parcel fits a
// courier's planned route.
//
// A parcel matches when both legs line up with the route:
//   - the parcel's pickup point lies within the courier's pickup radius
//     of the route start
//   - the parcel's dropoff point lies within the courier's dropoff radius
//     of the route destination
//
// Distances are great-circle distances in kilometers. Points exactly on a
// radius boundary count as a match. The matcher is stateless and holds no
// knowledge of persistence; callers resolve address coordinates before
// invoking it.
type RouteMatcher struct{}

// NewRouteMatcher creates a new RouteMatcher instance.
func NewRouteMatcher() RouteMatcher {
	return RouteMatcher{}
}

// MatchesRoute reports whether the parcel leg described by pickup and
// dropoff fits the courier's route anchored at routeStart and routeEnd.
//
// The courier must be valid and carry positive radii; coordinate values
// must have been constructed through kernel.NewCoordinate.
func (m RouteMatcher) MatchesRoute(
	c *courier.Courier,
	routeStart kernel.Coordinate,
	routeEnd kernel.Coordinate,
	pickup kernel.Coordinate,
	dropoff kernel.Coordinate,
) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	for _, coord := range []kernel.Coordinate{routeStart, routeEnd, pickup, dropoff} {
		if err := coord.Validate(); err != nil {
			return false, err
		}
	}

	pickupLeg, err := routeStart.DistanceKm(pickup)
	if err != nil {
		return false, err
	}
	if pickupLeg > c.PickupRadiusKm() {
		return false, nil
	}

	dropoffLeg, err := routeEnd.DistanceKm(dropoff)
	if err != nil {
		return false, err
	}

	return dropoffLeg <= c.DropoffRadiusKm(), nil
}
