package service

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
)

const defaultPageSize = 10

// CatalogService serves course and test listings with registration stats
// for the calling user.
type CatalogService struct {
	itemRepo ports.ItemRepo
}

func NewCatalogService(itemRepo ports.ItemRepo) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

func (s *CatalogService) ListCourses(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error) {
	p.Type = domain.ItemTypeCourse
	return s.list(ctx, p)
}

func (s *CatalogService) ListTests(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error) {
	p.Type = domain.ItemTypeTest
	return s.list(ctx, p)
}

func (s *CatalogService) list(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Sort == "" {
		p.Sort = domain.ItemSortCreated
	}

	return s.itemRepo.ListWithStats(ctx, p)
}
