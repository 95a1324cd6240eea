package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports/mocks"
)

func TestCatalogService_ListCourses_Defaults(t *testing.T) {
	itemRepo := mocks.NewMockItemRepo(t)
	svc := NewCatalogService(itemRepo)

	items := []*domain.ItemWithStats{
		{Item: domain.Item{ID: 1, Type: domain.ItemTypeCourse}, RegistrationCount: 3},
	}

	itemRepo.EXPECT().ListWithStats(mock.Anything, domain.ItemListParams{
		UserID: 1,
		Type:   domain.ItemTypeCourse,
		Page:   1,
		Size:   10,
		Sort:   domain.ItemSortCreated,
	}).Return(items, 1, nil)

	got, total, err := svc.ListCourses(context.Background(), domain.ItemListParams{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, items, got)
}

func TestCatalogService_ListTests_ForcesType(t *testing.T) {
	itemRepo := mocks.NewMockItemRepo(t)
	svc := NewCatalogService(itemRepo)

	itemRepo.EXPECT().ListWithStats(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error) {
			assert.Equal(t, domain.ItemTypeTest, p.Type)
			return nil, 0, nil
		},
	)

	// The caller cannot smuggle a different item type through the params.
	_, _, err := svc.ListTests(context.Background(), domain.ItemListParams{
		UserID: 1,
		Type:   domain.ItemTypeCourse,
		Page:   2,
		Size:   5,
		Sort:   domain.ItemSortPopular,
	})

	require.NoError(t, err)
}
