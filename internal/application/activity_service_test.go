package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProfJake/lab10/internal/domain/entity"
	repo "github.com/ProfJake/lab10/internal/domain/repository"
	"github.com/ProfJake/lab10/internal/infrastructure/memory"
	"github.com/ProfJake/lab10/pkg/tracker"
)

func newActivityService() (*ActivityService, *memory.ActivityRepository) {
	activities := memory.NewActivityRepository()
	return NewActivityService(activities, tracker.Calculate, nil), activities
}

func TestRecordThenSearchEndToEnd(t *testing.T) {
	svc, _ := newActivityService()
	ctx := context.Background()

	in, err := ParseActivityInput(map[string]string{
		"activity": "running",
		"weight":   "180",
		"distance": "3.1",
		"time":     "30",
		"user":     "alice",
	})
	require.NoError(t, err)

	rec, err := svc.Record(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Greater(t, rec.Calories, 0.0)

	criteria, err := ParseSearchInput(map[string]string{"prop": "user", "value": "alice"})
	require.NoError(t, err)

	res, err := svc.Search(ctx, criteria)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "alice", res.Items[0].User)
	assert.Greater(t, res.Items[0].Calories, 0.0)
	assert.Equal(t, repo.FieldUser, res.Field)
	assert.Equal(t, "alice", res.Value)
}

func TestRecordRejectedByTrackerPersistsNothing(t *testing.T) {
	svc, activities := newActivityService()
	ctx := context.Background()

	_, err := svc.Record(ctx, ActivityInput{
		Type: "levitating", Weight: 180, Distance: 3, Time: 30, UserID: "alice",
	})
	require.ErrorIs(t, err, tracker.ErrUnknownActivity)

	stored, err := activities.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSearchOrdersByDistanceDescending(t *testing.T) {
	svc, _ := newActivityService()
	ctx := context.Background()

	for _, distance := range []string{"2", "5"} {
		in, err := ParseActivityInput(map[string]string{
			"activity": "running",
			"weight":   "180",
			"distance": distance,
			"time":     "30",
			"user":     "alice",
		})
		require.NoError(t, err)
		_, err = svc.Record(ctx, in)
		require.NoError(t, err)
	}

	res, err := svc.Search(ctx, repo.SearchCriteria{Field: repo.FieldUser, Text: "alice"})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	first, err := svc.Get(ctx, res.Items[0].ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, res.Items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.Distance)
	assert.Equal(t, 2.0, second.Distance)
}

func TestSearchNumericCriteria(t *testing.T) {
	svc, _ := newActivityService()
	ctx := context.Background()

	in, err := ParseActivityInput(map[string]string{
		"activity": "cycling",
		"weight":   "160",
		"distance": "12",
		"time":     "45",
		"user":     "bob",
	})
	require.NoError(t, err)
	_, err = svc.Record(ctx, in)
	require.NoError(t, err)

	res, err := svc.Search(ctx, repo.SearchCriteria{Field: repo.FieldDistance, Number: 12})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "bob", res.Items[0].User)

	res, err = svc.Search(ctx, repo.SearchCriteria{Field: repo.FieldDistance, Number: 13})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestSearchSkipsRecordsWithBadStoredData(t *testing.T) {
	svc, activities := newActivityService()
	ctx := context.Background()

	// A record with zero weight slipped into the store; the calorie
	// computation fails for it and it alone drops out.
	_, err := activities.Insert(ctx, &entity.Activity{
		Type: "running", Weight: 0, Distance: 9, Time: 30, UserID: "alice",
	})
	require.NoError(t, err)

	in, err := ParseActivityInput(map[string]string{
		"activity": "running",
		"weight":   "180",
		"distance": "3.1",
		"time":     "30",
		"user":     "alice",
	})
	require.NoError(t, err)
	rec, err := svc.Record(ctx, in)
	require.NoError(t, err)

	res, err := svc.Search(ctx, repo.SearchCriteria{Field: repo.FieldUser, Text: "alice"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, rec.ID, res.Items[0].ID)
}

func TestListForUserEnriches(t *testing.T) {
	svc, activities := newActivityService()
	ctx := context.Background()

	for _, a := range []entity.Activity{
		{Type: "hiking", Weight: 170, Distance: 4, Time: 90, UserID: "carol"},
		{Type: "rowing", Weight: 170, Distance: 0, Time: 20, UserID: "carol"},
		{Type: "running", Weight: -5, Distance: 2, Time: 20, UserID: "carol"}, // bad stored data
		{Type: "walking", Weight: 170, Distance: 1, Time: 25, UserID: "dave"},
	} {
		rec := a
		_, err := activities.Insert(ctx, &rec)
		require.NoError(t, err)
	}

	out, err := svc.ListForUser(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, item := range out {
		assert.Equal(t, "carol", item.UserID)
		assert.Greater(t, item.Calories, 0.0)
	}
}

func TestGetUnknownActivity(t *testing.T) {
	svc, _ := newActivityService()
	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repo.ErrNotFound)
}
