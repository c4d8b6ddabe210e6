package permission

import (
	"context"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/profile"
	"github.com/majlis/majlis-api/internal/domain/user"
)

// ProfileReader is the slice of the profile repository the resolver
// needs to find a subject's role.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

// Resolver answers "may this user perform this action" by combining the
// subject's role with the grant table. Every failure path denies.
type Resolver struct {
	store    *Store
	profiles ProfileReader
}

// NewResolver creates a permission resolver.
func NewResolver(store *Store, profiles ProfileReader) *Resolver {
	return &Resolver{store: store, profiles: profiles}
}

// ResolveRole finds the role for a user. A missing profile resolves to
// member, never to anything elevated.
func (r *Resolver) ResolveRole(ctx context.Context, userID uuid.UUID) (user.Role, error) {
	p, err := r.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return user.RoleMember, nil
	}
	return user.NormalizeRole(p.Role), nil
}

// Can reports whether the user holds an enabled grant for kind.
// Unauthenticated subjects are always denied.
func (r *Resolver) Can(ctx context.Context, userID uuid.UUID, kind Kind) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	role, err := r.ResolveRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return r.store.Allowed(ctx, role, kind)
}

// Permissions returns the user's full permission set, one entry per
// known kind. Unauthenticated subjects get the all-denied set.
func (r *Resolver) Permissions(ctx context.Context, userID uuid.UUID) (map[Kind]bool, error) {
	if userID == uuid.Nil {
		return NoPermissions(), nil
	}

	role, err := r.ResolveRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.store.PermissionsFor(ctx, role)
}
