package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/domain/user"
	"github.com/majlis/majlis-api/internal/pkg/jwt"
	"github.com/majlis/majlis-api/internal/pkg/password"
)

const refreshKeyPrefix = "refresh:"

// ProfileCreator creates the initial profile for a new account
type ProfileCreator interface {
	CreateDefault(ctx context.Context, userID uuid.UUID, displayName string) error
}

// Service handles authentication business logic
type Service struct {
	users    user.Repository
	jwtSvc   *jwt.Service
	redis    *redis.Client
	profiles ProfileCreator
}

// NewService creates auth service
func NewService(users user.Repository, jwtSvc *jwt.Service, redisClient *redis.Client, profiles ProfileCreator) *Service {
	return &Service{
		users:    users,
		jwtSvc:   jwtSvc,
		redis:    redisClient,
		profiles: profiles,
	}
}

// Register creates a new member account with its profile
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.profiles.CreateDefault(ctx, u.ID, req.DisplayName); err != nil {
		log.Error().Err(err).Str("user_id", u.ID.String()).Msg("Failed to create default profile")
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: u, Tokens: *tokens}, nil
}

// Login authenticates a user and returns a token pair
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if u.IsBanned {
		return nil, ErrUserBanned
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: u, Tokens: *tokens}, nil
}

// Refresh rotates a refresh token and returns a fresh pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	if s.redis != nil {
		stored, err := s.redis.Get(ctx, refreshKeyPrefix+claims.ID).Result()
		if err != nil || stored != claims.UserID.String() {
			return nil, ErrInvalidRefresh
		}
		// Rotation: the presented token is single-use
		_ = s.redis.Del(ctx, refreshKeyPrefix+claims.ID).Err()
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidRefresh
	}
	if u.IsBanned {
		return nil, ErrUserBanned
	}

	return s.issueTokens(ctx, u)
}

// Logout revokes a refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil // already unusable
	}
	if s.redis != nil {
		return s.redis.Del(ctx, refreshKeyPrefix+claims.ID).Err()
	}
	return nil
}

func (s *Service) issueTokens(ctx context.Context, u *user.User) (*TokenPair, error) {
	access, err := s.jwtSvc.GenerateAccessToken(u.ID, string(u.Role), u.IsBanned)
	if err != nil {
		return nil, err
	}

	refresh, jti, expiresAt, err := s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		ttl := time.Until(expiresAt)
		if err := s.redis.Set(ctx, refreshKeyPrefix+jti, u.ID.String(), ttl).Err(); err != nil {
			return nil, err
		}
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTTL().Seconds()),
	}, nil
}
