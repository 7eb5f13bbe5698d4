// Package store persists alignment results in SQLite so repeat plays of an
// unchanged song skip the alignment pass.
//
// Records are keyed by the SHA-256 fingerprints of the two transcript files;
// editing either file invalidates the cached entry naturally. The database
// is a cache, not an archive: schema changes bump the version in schema.go
// and users clear the cache to adopt the new schema.
package store
