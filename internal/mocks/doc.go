// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock takes optional function fields; unset functions fall
// back to the zero-value fields on the struct.
package mocks
