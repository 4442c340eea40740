// Package parcel contains the Parcel aggregate: a delivery request created by
// a sender, carrying pickup and dropoff address references and descriptive
// attributes. Parcel status moves one way through
// pending -> assigned -> in_transit -> delivered; cancellation of the carrying
// delivery returns an assigned or in-transit parcel to pending. At most one
// live (non-cancelled) delivery exists for a parcel at any time.
package parcel
