package profile

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/pkg/imaging"
	"github.com/majlis/majlis-api/internal/pkg/storage"
)

// Service handles profile business logic
type Service struct {
	repo      Repository
	store     storage.Storage
	processor *imaging.Processor
}

// NewService creates profile service
func NewService(repo Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		processor: processor,
	}
}

// CreateDefault creates the initial profile for a new account
func (s *Service) CreateDefault(ctx context.Context, userID uuid.UUID, displayName string) error {
	now := time.Now()
	return s.repo.Create(ctx, &Profile{
		UserID:      userID,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// GetByUserID returns a profile by user id
func (s *Service) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// UpdateOwn applies a profile edit by its owner
func (s *Service) UpdateOwn(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		p.Bio = sql.NullString{String: *req.Bio, Valid: *req.Bio != ""}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UploadAvatar normalizes the uploaded image, stores both variants and
// updates the profile record. The previous avatar objects are removed
// best-effort.
func (s *Service) UploadAvatar(ctx context.Context, userID uuid.UUID, reader io.Reader) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	processed, err := s.processor.Process(reader)
	if err != nil {
		return nil, ErrInvalidImage
	}

	key := fmt.Sprintf("avatars/%s/%s", userID, uuid.New())
	fullKey := key + ".jpg"
	thumbKey := key + "_thumb.jpg"

	if err := s.store.Put(ctx, fullKey, bytes.NewReader(processed.Full), processed.ContentType); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		// Do not leave a half-written avatar pair behind
		_ = s.store.Delete(ctx, fullKey)
		return nil, err
	}

	oldKey := p.AvatarKey

	avatarURL := s.store.GetURL(fullKey)
	thumbURL := s.store.GetURL(thumbKey)
	if err := s.repo.UpdateAvatar(ctx, userID, avatarURL, thumbURL, key); err != nil {
		return nil, err
	}

	if oldKey.Valid && oldKey.String != "" {
		if err := s.store.Delete(ctx, oldKey.String+".jpg"); err != nil {
			log.Warn().Err(err).Str("key", oldKey.String).Msg("Failed to delete old avatar")
		}
		_ = s.store.Delete(ctx, oldKey.String+"_thumb.jpg")
	}

	p.AvatarURL = sql.NullString{String: avatarURL, Valid: true}
	p.AvatarThumbURL = sql.NullString{String: thumbURL, Valid: true}
	p.AvatarKey = sql.NullString{String: key, Valid: true}
	return p, nil
}
