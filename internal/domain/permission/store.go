package permission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/user"
)

// Store serves permission lookups from an in-memory copy of the grant
// table. The copy is rebuilt lazily after every invalidation, so a
// toggled grant takes effect on the next check.
type Store struct {
	repo Repository

	mu     sync.RWMutex
	byRole map[user.Role]map[Kind]bool
	loaded bool

	onInvalidate []func()
}

// NewStore creates a permission store over the grant repository.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// OnInvalidate registers a hook fired after every grant change. Must be
// called during wiring, before the store serves lookups.
func (s *Store) OnInvalidate(fn func()) {
	s.onInvalidate = append(s.onInvalidate, fn)
}

// Allowed reports whether the role holds an enabled grant for kind.
// Missing rows and unknown kinds deny.
func (s *Store) Allowed(ctx context.Context, role user.Role, kind Kind) (bool, error) {
	byRole, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return byRole[user.NormalizeRole(string(role))][kind], nil
}

// PermissionsFor returns the full permission set for a role, with every
// kind present and ungranted kinds false.
func (s *Store) PermissionsFor(ctx context.Context, role user.Role) (map[Kind]bool, error) {
	byRole, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	perms := NoPermissions()
	for kind, enabled := range byRole[user.NormalizeRole(string(role))] {
		perms[kind] = enabled
	}
	return perms, nil
}

// List returns the grant rows straight from the repository, bypassing
// the cache, for the admin permission screen.
func (s *Store) List(ctx context.Context) ([]*Grant, error) {
	return s.repo.List(ctx)
}

// SetGrantEnabled toggles a grant row and invalidates the cached copy,
// so the change is visible to the very next permission check.
func (s *Store) SetGrantEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*Grant, error) {
	if err := s.repo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}

	s.Invalidate()

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGrantNotFound
	}
	return g, nil
}

// Invalidate drops the cached grant table and fires registered hooks.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.byRole = nil
	s.mu.Unlock()

	for _, fn := range s.onInvalidate {
		fn()
	}
}

func (s *Store) snapshot(ctx context.Context) (map[user.Role]map[Kind]bool, error) {
	s.mu.RLock()
	if s.loaded {
		byRole := s.byRole
		s.mu.RUnlock()
		return byRole, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.byRole, nil
	}

	grants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byRole := make(map[user.Role]map[Kind]bool)
	for _, g := range grants {
		if !IsValidKind(g.Kind) {
			log.Warn().Str("grant_id", g.ID.String()).Str("kind", string(g.Kind)).Msg("skipping grant with unknown kind")
			continue
		}
		role := user.NormalizeRole(string(g.Role))
		if byRole[role] == nil {
			byRole[role] = make(map[Kind]bool)
		}
		// With duplicate rows for the same role and kind, an enabled
		// row always wins.
		if g.Enabled {
			byRole[role][g.Kind] = true
		} else if _, seen := byRole[role][g.Kind]; !seen {
			byRole[role][g.Kind] = false
		}
	}

	s.byRole = byRole
	s.loaded = true
	return byRole, nil
}
