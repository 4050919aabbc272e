package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

func newTestCache(t *testing.T) (*DetailsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDetailsCache(client, 5*time.Minute), mr
}

func sampleDetails(slug string) *domain.ProjectDetails {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	projectID := uuid.New()
	return &domain.ProjectDetails{
		Project: domain.Project{
			ID:        projectID,
			Slug:      slug,
			Name:      "Tracker",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Tasks: []domain.Task{{
			ID:        uuid.New(),
			ProjectID: projectID,
			Title:     "dark mode",
			Status:    domain.StatusBacklog,
			Type:      domain.TypeFeature,
			Priority:  domain.PriorityHigh,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Updates: []domain.Update{{
			ID:        uuid.New(),
			ProjectID: projectID,
			Title:     "v0.1",
			Body:      "shipped",
			CreatedAt: now,
		}},
	}
}

func TestDetailsCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	miss, err := c.GetDetails(ctx, "tracker")
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := sampleDetails("tracker")
	require.NoError(t, c.SetDetails(ctx, "tracker", want))

	got, err := c.GetDetails(ctx, "tracker")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Project.Slug, got.Project.Slug)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, domain.StatusBacklog, got.Tasks[0].Status)
	require.Len(t, got.Updates, 1)
	assert.Equal(t, "v0.1", got.Updates[0].Title)
}

func TestDetailsCache_ProjectList(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	miss, err := c.GetProjectList(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := []domain.Project{sampleDetails("a").Project, sampleDetails("b").Project}
	require.NoError(t, c.SetProjectList(ctx, want))

	got, err := c.GetProjectList(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Slug)
	assert.Equal(t, "b", got[1].Slug)
}

func TestDetailsCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDetails(ctx, "tracker", sampleDetails("tracker")))
	require.NoError(t, c.SetDetails(ctx, "other", sampleDetails("other")))
	require.NoError(t, c.SetProjectList(ctx, []domain.Project{sampleDetails("tracker").Project}))

	require.NoError(t, c.Invalidate(ctx, "tracker"))

	gone, err := c.GetDetails(ctx, "tracker")
	require.NoError(t, err)
	assert.Nil(t, gone)

	list, err := c.GetProjectList(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)

	// Other slugs keep their entries.
	kept, err := c.GetDetails(ctx, "other")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestDetailsCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDetails(ctx, "tracker", sampleDetails("tracker")))
	mr.FastForward(10 * time.Minute)

	got, err := c.GetDetails(ctx, "tracker")
	require.NoError(t, err)
	assert.Nil(t, got)
}
