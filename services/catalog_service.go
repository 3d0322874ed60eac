package services

import (
	"context"
	"sort"
	"strings"

	"food-store/libs"
	"food-store/models"
)

const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CatalogFilters narrows and orders a product listing. Zero values mean "all
// categories, no search, upstream order".
type CatalogFilters struct {
	CategoryID int
	Search     string
	Sort       string
}

// CatalogService serves the storefront listing: available products fetched
// upstream, then filtered and sorted here.
type CatalogService struct {
	api *libs.APIClient
}

func NewCatalogService(api *libs.APIClient) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) ListProducts(ctx context.Context, filters CatalogFilters) ([]models.Product, error) {
	products, err := s.api.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, p := range products {
		if filters.CategoryID != 0 && p.CategoryID != filters.CategoryID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filters.Sort {
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) > strings.ToLower(filtered[j].Name)
		})
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.api.GetCategories(ctx)
}
