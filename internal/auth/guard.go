// Package auth is the authorization decision point. It is pure: every check
// consults only the identity and the permission table, so callers may invoke
// it speculatively (e.g. to decide whether a control should render) without
// side effects.
package auth

import "github.com/matalogics/inventory-api/internal/core/domain"

// RequireAction allows the operation when the identity is present and its
// role permits the action. A zero identity or a denied action yields
// ErrForbidden; the caller is never silently downgraded.
func RequireAction(identity domain.Identity, action domain.Action) error {
	if identity.IsZero() {
		return domain.ErrForbidden
	}
	if !domain.Permit(identity.Role, action) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireActionOnUser gates user-management operations aimed at a specific
// account. On top of RequireAction it denies destructive actions that target
// the caller's own account: an Admin can never demote, disable, or delete
// themselves through this path, regardless of the manageUsers flag.
func RequireActionOnUser(identity domain.Identity, targetUserID string, action domain.Action) error {
	if err := RequireAction(identity, action); err != nil {
		return err
	}
	if targetUserID != "" && targetUserID == identity.ID {
		return domain.ErrForbidden
	}
	return nil
}
