package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func validProductRequest() ProductRequest {
	return ProductRequest{
		Name:          "Tea",
		Slug:          "tea",
		Description:   "Loose-leaf blend",
		Price:         int64p(1299),
		StockQuantity: int64p(40),
	}
}

func TestCreateProduct(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validProductRequest()
	req.IsFeatured = true

	product, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Contains(t, product.ID, "prod_")
	assert.Equal(t, int64(1299), product.Price)
	assert.Equal(t, "true", product.Featured)
	assert.NotEmpty(t, product.CreatedAt)

	got, err := svc.ProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, *product, *got)
}

func TestCreateProductMissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := map[string]func(*ProductRequest){
		"name":          func(r *ProductRequest) { r.Name = "" },
		"slug":          func(r *ProductRequest) { r.Slug = "" },
		"description":   func(r *ProductRequest) { r.Description = "" },
		"price":         func(r *ProductRequest) { r.Price = nil },
		"stockQuantity": func(r *ProductRequest) { r.StockQuantity = nil },
	}
	for field, blank := range cases {
		req := validProductRequest()
		blank(&req)
		_, err := svc.CreateProduct(ctx, req)
		require.Error(t, err, field)
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.Contains(t, MessageOf(err), field)
	}
}

func TestCreateProductDuplicateSlug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, validProductRequest())
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, validProductRequest())
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Contains(t, MessageOf(err), "slug")
}

func TestProductByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProductByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestProductBySlug(t *testing.T) {
	svc, st, cols := newTestService(t)
	ctx := context.Background()

	want := seedProduct(t, st, cols, Product{ID: "p1", Name: "Tea", Slug: "tea", Price: 1000, StockQuantity: 5})
	seedProduct(t, st, cols, Product{ID: "p2", Name: "Other", Slug: "other", Price: 500, StockQuantity: 5})

	got, err := svc.ProductBySlug(ctx, "tea")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	_, err = svc.ProductBySlug(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestFeaturedProductsSubset(t *testing.T) {
	svc, st, cols := newTestService(t)
	ctx := context.Background()

	seedProduct(t, st, cols, Product{ID: "p1", Name: "A", Slug: "a", Featured: "true"})
	seedProduct(t, st, cols, Product{ID: "p2", Name: "B", Slug: "b", Featured: "false"})
	seedProduct(t, st, cols, Product{ID: "p3", Name: "C", Slug: "c", Featured: "true"})

	featured, err := svc.FeaturedProducts(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(featured))
	for _, p := range featured {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"p1", "p3"}, ids)

	all, err := svc.AllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
