// Package address contains the Address and PostalCode entities owned by the
// address registry. An address is identified by the tuple (street name, house
// number, extra info, postal code): two requests describing the same physical
// address must resolve to the same stored record. Coordinates start empty and
// are filled in exactly once by geocoding; once present they are an immutable
// cache and are never silently overwritten.
package address
