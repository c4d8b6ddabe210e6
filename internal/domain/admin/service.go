package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/user"
)

// Service handles admin user management. It is the only place a role
// is ever written; registration always starts users as members.
type Service struct {
	users user.Repository
}

// NewService creates admin service
func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// ListUsers returns accounts for the admin user screen.
func (s *Service) ListUsers(ctx context.Context, filter *user.ListFilter) ([]*user.User, int, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateRole assigns a user a new role.
func (s *Service) UpdateRole(ctx context.Context, actorID, userID uuid.UUID, role user.Role) (*user.User, error) {
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	log.Info().
		Str("actor_id", actorID.String()).
		Str("user_id", userID.String()).
		Str("role", string(role)).
		Msg("user role updated")

	return s.users.GetByID(ctx, userID)
}

// SetBanned bans or unbans a user. Banned users fail authentication on
// their next request.
func (s *Service) SetBanned(ctx context.Context, actorID, userID uuid.UUID, banned bool) (*user.User, error) {
	if err := s.users.SetBanned(ctx, userID, banned); err != nil {
		return nil, err
	}

	log.Info().
		Str("actor_id", actorID.String()).
		Str("user_id", userID.String()).
		Bool("banned", banned).
		Msg("user ban updated")

	return s.users.GetByID(ctx, userID)
}
