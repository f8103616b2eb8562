// Package memory provides in-process implementations of the internal/store
// interfaces. They follow the same contract as the PostgreSQL stores and are
// used by service and handler tests.
package memory
