// Package postgres provides PostgreSQL implementations of the storage
// interfaces defined in internal/store, together with the embedded goose
// migrations that create the books and users tables.
//
// Every mutation is a single SQL statement; updates and deletes use
// RETURNING so that the caller receives the stored row without a second
// round trip.
package postgres
