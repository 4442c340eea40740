// Package delivery contains the Delivery aggregate: the record binding a
// parcel to a courier, created at assignment time with a snapshot of the
// parcel's pickup and dropoff address references so later address edits never
// retroactively change an in-flight delivery. Delivery status and parcel
// status move in lock-step: assigned/assigned, picked_up/in_transit,
// delivered/delivered. Cancelled deliveries are retained for history rather
// than deleted.
package delivery
