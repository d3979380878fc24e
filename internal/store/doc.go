// Package store defines the repository contract of the CMS and its two
// interchangeable backends: an in-memory store seeded with sample content
// (development/demo) and a MongoDB-backed store (deployment).
//
// The contract treats absence as a normal outcome: singleton getters
// return a nil record, keyed lookups and mutations return typed not-found
// sentinels. Faults of the backing technology propagate as wrapped errors
// and are the only outcomes the transport layer maps to 5xx.
//
// Inherited divergence: the memory backend lists every skill/project row
// while the mongo backend filters on isActive, matching the behavior of
// the respective original backends against existing stored data.
package store
