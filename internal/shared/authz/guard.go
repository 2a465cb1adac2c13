// Package authz decides whether an acting user may modify a target record.
package authz

import "net/http"

// Guard is the per-object permission predicate consulted by handlers before
// any mutating operation.
type Guard interface {
	// CanModify reports whether the acting user may perform the given HTTP
	// method on a record owned by ownerID.
	CanModify(method string, actingID, ownerID uint) bool
}

// OwnerGuard permits reads to anyone and writes only to the record's owner.
// Staff and superuser flags are deliberately not consulted; an admin override
// would be a separate extension point.
type OwnerGuard struct{}

// Compile-time check to ensure OwnerGuard implements Guard.
var _ Guard = OwnerGuard{}

// NewOwnerGuard creates a new OwnerGuard.
func NewOwnerGuard() OwnerGuard {
	return OwnerGuard{}
}

// CanModify returns true for safe (read-only) methods, and otherwise true
// iff the acting user owns the target record.
func (OwnerGuard) CanModify(method string, actingID, ownerID uint) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return actingID == ownerID
}
