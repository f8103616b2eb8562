// Package testdb provides utilities specifically for database testing:
// locating the test database, applying the embedded migrations and running
// each test inside a transaction that is rolled back afterwards.
//
// Tests that use it are expected to carry the "integration" build tag and
// are skipped when SHELF_TEST_DATABASE_URL is not set.
package testdb
