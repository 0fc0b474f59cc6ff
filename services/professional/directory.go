package professional

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "wellnest/database/repository/professional"
	"wellnest/models"

	"go.uber.org/zap"
)

// Directory resolves the user account behind a professional profile. Reviews
// and events key on different ids, so callers of the rating service need both.
type Directory interface {
	ResolveUserID(ctx context.Context, id models.ProfessionalID) (models.ProfessionalUserID, error)
}

type DefaultDirectory struct {
	Repo   professionalRepo.ProfessionalRepository
	Cache  DirectoryCache
	Logger *zap.Logger
}

func NewDefaultDirectory(repo professionalRepo.ProfessionalRepository, cache DirectoryCache, logger *zap.Logger) *DefaultDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDirectory{Repo: repo, Cache: cache, Logger: logger}
}

// ResolveUserID reads through the cache. Cache failures degrade to a database read.
func (d *DefaultDirectory) ResolveUserID(ctx context.Context, id models.ProfessionalID) (models.ProfessionalUserID, error) {
	if d.Cache != nil {
		userID, err := d.Cache.Get(ctx, id)
		if err == nil && userID != "" {
			return userID, nil
		}
		if err != nil && !errors.Is(err, ErrCacheMiss) {
			d.Logger.Warn("directory cache read failed", zap.String("professionalId", id.String()), zap.Error(err))
		}
	}

	professional, err := d.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if professional.UserID == "" {
		return "", fmt.Errorf("professional %s has no user account", id)
	}

	if d.Cache != nil {
		if err := d.Cache.Set(ctx, id, professional.UserID); err != nil {
			d.Logger.Warn("directory cache write failed", zap.String("professionalId", id.String()), zap.Error(err))
		}
	}
	return professional.UserID, nil
}
