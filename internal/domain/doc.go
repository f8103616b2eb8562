// Package domain contains the core business entities of the application:
// books and users, together with the patch types that describe partial
// updates. It is independent of any storage or delivery mechanism.
package domain
