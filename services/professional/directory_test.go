package professional

import (
	"context"
	"errors"
	"testing"

	"wellnest/database"
	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	professionals map[models.ProfessionalID]*models.Professional
	calls         int
}

func (r *stubRepo) GetByID(_ context.Context, id models.ProfessionalID) (*models.Professional, error) {
	r.calls++
	p, ok := r.professionals[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return p, nil
}

func (r *stubRepo) GetRating(context.Context, models.ProfessionalID) (models.RatingSummary, error) {
	return models.RatingSummary{}, nil
}

func (r *stubRepo) UpdateRating(context.Context, models.ProfessionalID, float64, int) error {
	return nil
}

type memoryCache struct {
	entries map[models.ProfessionalID]models.ProfessionalUserID
	getErr  error
}

func (c *memoryCache) Get(_ context.Context, id models.ProfessionalID) (models.ProfessionalUserID, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.entries[id]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, id models.ProfessionalID, userID models.ProfessionalUserID) error {
	c.entries[id] = userID
	return nil
}

func newStubs() (*stubRepo, *memoryCache) {
	repo := &stubRepo{professionals: map[models.ProfessionalID]*models.Professional{
		"prof-1": {ID: "prof-1", UserID: "user-1"},
		"prof-2": {ID: "prof-2"},
	}}
	return repo, &memoryCache{entries: map[models.ProfessionalID]models.ProfessionalUserID{}}
}

func TestResolveUserIDCachesLookup(t *testing.T) {
	repo, cache := newStubs()
	dir := NewDefaultDirectory(repo, cache, nil)

	for i := 0; i < 3; i++ {
		userID, err := dir.ResolveUserID(context.Background(), "prof-1")
		require.NoError(t, err)
		assert.Equal(t, models.ProfessionalUserID("user-1"), userID)
	}
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, models.ProfessionalUserID("user-1"), cache.entries["prof-1"])
}

func TestResolveUserIDFallsBackOnCacheError(t *testing.T) {
	repo, cache := newStubs()
	cache.getErr = errors.New("redis: connection refused")
	dir := NewDefaultDirectory(repo, cache, nil)

	userID, err := dir.ResolveUserID(context.Background(), "prof-1")
	require.NoError(t, err)
	assert.Equal(t, models.ProfessionalUserID("user-1"), userID)
	assert.Equal(t, 1, repo.calls)
}

func TestResolveUserIDErrors(t *testing.T) {
	repo, cache := newStubs()
	dir := NewDefaultDirectory(repo, cache, nil)

	_, err := dir.ResolveUserID(context.Background(), "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = dir.ResolveUserID(context.Background(), "prof-2")
	assert.Error(t, err)
	assert.Empty(t, cache.entries)
}

func TestDirectoryKey(t *testing.T) {
	assert.Equal(t, "professional:user:prof-9", directoryKey("prof-9"))
}
