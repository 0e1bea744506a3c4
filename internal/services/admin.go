package services

import (
	"context"
	"strings"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

func (s *AdminService) List(ctx context.Context, d listquery.Descriptor) (*ListResult[models.Admin], error) {
	admins, err := s.store.Admins().List(ctx, d)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Admins().Count(ctx, d)
	if err != nil {
		return nil, err
	}

	return &ListResult[models.Admin]{Items: admins, Total: total}, nil
}

// Grant is idempotent and returns the admin row.
func (s *AdminService) Grant(ctx context.Context, userID string) (*models.Admin, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, srvErrors.NewValidationError("user id is required")
	}
	if err := s.store.Admins().Grant(ctx, userID); err != nil {
		return nil, err
	}

	admins, err := s.store.Admins().List(ctx, listquery.All(map[string]any{"userId": userID}))
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("admin", userID)
	}
	return &admins[0], nil
}

func (s *AdminService) Revoke(ctx context.Context, userID string) error {
	removed, err := s.store.Admins().Revoke(ctx, userID)
	if err != nil {
		return err
	}
	if !removed {
		return srvErrors.NewResourceNotFoundError("admin", userID)
	}
	return nil
}
