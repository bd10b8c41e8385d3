package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/pkg/utils"
)

func TestCreateCategoryUppercasesName(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)

	category, err := categorySvc.CreateCategory(context.Background(), "parks")

	require.NoError(t, err)
	assert.Equal(t, "PARKS", category.Name)
}

func TestCreateCategoryRejectsCaseInsensitiveDuplicate(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)

	_, err := categorySvc.CreateCategory(context.Background(), "Parks")
	require.NoError(t, err)

	_, err = categorySvc.CreateCategory(context.Background(), "pArKs")
	assert.ErrorIs(t, err, utils.ErrCategoryExists)
	assert.Len(t, store.categories, 1)
}

func TestDeleteCategoryUnknownName(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)

	_, err := categorySvc.DeleteCategory(context.Background(), "GHOSTS")

	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

// Scenario from the cascade design: PARKS holds P1 (2 images, owned
// by U1) and P2 (no images, owned by U2), both owners at 3 POIs.
func TestDeleteCategoryCascadesThroughPoisAndImages(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)
	u1 := seedUser(store, "u1@example.com", 3)
	u2 := seedUser(store, "u2@example.com", 3)
	parks := seedCategory(store, "PARKS")
	p1 := seedPoi(store, u1.ID, &parks.ID, "P1")
	p2 := seedPoi(store, u2.ID, &parks.ID, "P2")
	i1 := seedImage(store, p1.ID)
	i2 := seedImage(store, p1.ID)

	report, err := categorySvc.DeleteCategory(context.Background(), "PARKS")

	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.Equal(t, 1, report.CategoriesDeleted)
	assert.Equal(t, 2, report.PoisDeleted)
	assert.Equal(t, 2, report.ImagesDeleted)

	assert.NotContains(t, store.categories, parks.ID)
	assert.NotContains(t, store.pois, p1.ID)
	assert.NotContains(t, store.pois, p2.ID)
	assert.NotContains(t, store.images, i1.ID)
	assert.NotContains(t, store.images, i2.ID)
	assert.NotContains(t, store.blobs, i1.PublicID)
	assert.NotContains(t, store.blobs, i2.PublicID)
	assert.Equal(t, 2, store.users[u1.ID].NumOfPoi)
	assert.Equal(t, 2, store.users[u2.ID].NumOfPoi)
}

func TestDeleteAllCategoriesPreservesOrphanPois(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)
	user := seedUser(store, "u@example.com", 3)
	parks := seedCategory(store, "PARKS")
	beaches := seedCategory(store, "BEACHES")
	inParks := seedPoi(store, user.ID, &parks.ID, "In Parks")
	onBeach := seedPoi(store, user.ID, &beaches.ID, "On Beach")
	orphan := seedPoi(store, user.ID, nil, "Orphan")
	img := seedImage(store, inParks.ID)

	report, err := categorySvc.DeleteCategory(context.Background(), "all")

	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.Equal(t, 2, report.CategoriesDeleted)
	assert.Equal(t, 2, report.PoisDeleted)
	assert.Equal(t, 1, report.ImagesDeleted)

	assert.Empty(t, store.categories)
	assert.NotContains(t, store.pois, inParks.ID)
	assert.NotContains(t, store.pois, onBeach.ID)
	assert.NotContains(t, store.images, img.ID)

	// The cascade reaches only POIs referencing a category.
	assert.Contains(t, store.pois, orphan.ID)
	assert.Equal(t, 1, store.users[user.ID].NumOfPoi)
}

func TestDeleteAllCategoriesEmptiesEverythingReachable(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)
	u1 := seedUser(store, "u1@example.com", 1)
	u2 := seedUser(store, "u2@example.com", 2)
	parks := seedCategory(store, "PARKS")
	beaches := seedCategory(store, "BEACHES")
	a := seedPoi(store, u1.ID, &parks.ID, "A")
	b := seedPoi(store, u2.ID, &parks.ID, "B")
	c := seedPoi(store, u2.ID, &beaches.ID, "C")
	seedImage(store, a.ID)
	seedImage(store, b.ID)
	seedImage(store, c.ID)

	report, err := categorySvc.DeleteCategory(context.Background(), "all")

	require.NoError(t, err)
	assert.Equal(t, 3, report.PoisDeleted)
	assert.Equal(t, 3, report.ImagesDeleted)
	assert.Empty(t, store.categories)
	assert.Empty(t, store.pois)
	assert.Empty(t, store.images)
	assert.Empty(t, store.blobs)
	assert.Equal(t, 0, store.users[u1.ID].NumOfPoi)
	assert.Equal(t, 0, store.users[u2.ID].NumOfPoi)
}

func TestListCategoriesSortedByName(t *testing.T) {
	store := newFakeStore()
	_, _, categorySvc := newServices(store)
	seedCategory(store, "PARKS")
	seedCategory(store, "BEACHES")

	categories, err := categorySvc.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "BEACHES", categories[0].Name)
	assert.Equal(t, "PARKS", categories[1].Name)
}
