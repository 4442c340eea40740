// Package courier contains the Courier aggregate: a user travelling between a
// declared start and destination address who is willing to carry parcels that
// lie within their pickup and dropoff radii. The aggregate also tracks the
// courier's availability flag and last reported live position. A courier
// without a route cannot be matched.
package courier
