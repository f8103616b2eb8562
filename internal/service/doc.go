// Package service contains the request pipeline for books and users:
// payload validation, merge of partial updates onto stored records, credential
// checks and token issuance. It depends on the store interfaces and never on
// a concrete storage implementation.
//
// Expected failures are reported as sentinel errors (see errors.go), store
// sentinels wrapped with context, or *validation.Error. The API layer maps
// them to HTTP responses.
package service
