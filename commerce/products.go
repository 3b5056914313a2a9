package commerce

import (
	"context"
	"strconv"
)

// ProductRequest is the product-creation payload. Price and
// StockQuantity are pointers so a missing field is distinguishable
// from an explicit zero.
type ProductRequest struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Benefits        string   `json:"benefits"`
	Ingredients     string   `json:"ingredients"`
	Dosage          string   `json:"dosage"`
	Price           *int64   `json:"price"`
	StockQuantity   *int64   `json:"stockQuantity"`
	ImageURL        string   `json:"imageUrl"`
	Images          []string `json:"images"`
	StripePriceID   string   `json:"stripePriceId"`
	StripeProductID string   `json:"stripeProductId"`
	IsFeatured      bool     `json:"isFeatured"`
}

// CreateProduct validates the payload, rejects duplicate slugs and
// stores the new product. Price is in the smallest currency unit.
func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	switch {
	case req.Name == "":
		return nil, InvalidInputf("Missing required field: name")
	case req.Slug == "":
		return nil, InvalidInputf("Missing required field: slug")
	case req.Description == "":
		return nil, InvalidInputf("Missing required field: description")
	case req.Price == nil:
		return nil, InvalidInputf("Missing required field: price")
	case req.StockQuantity == nil:
		return nil, InvalidInputf("Missing required field: stockQuantity")
	}
	if *req.Price < 0 {
		return nil, InvalidInputf("Price must not be negative")
	}
	if *req.StockQuantity < 0 {
		return nil, InvalidInputf("Stock quantity must not be negative")
	}

	var existing []Product
	if err := s.store.Query(ctx, s.cols.Products, SlugIndex, req.Slug, &existing); err != nil {
		return nil, storeFailure("Failed to create product", err)
	}
	if len(existing) > 0 {
		return nil, InvalidInputf("Product with this slug already exists")
	}

	now := s.timestamp()
	product := Product{
		ID:              NewProductID(),
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Benefits:        req.Benefits,
		Ingredients:     req.Ingredients,
		Dosage:          req.Dosage,
		Price:           *req.Price,
		StockQuantity:   *req.StockQuantity,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		StripePriceID:   req.StripePriceID,
		StripeProductID: req.StripeProductID,
		IsFeatured:      req.IsFeatured,
		Featured:        strconv.FormatBool(req.IsFeatured),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Put(ctx, s.cols.Products, product); err != nil {
		return nil, storeFailure("Failed to create product", err)
	}
	return &product, nil
}

// ProductByID returns the product or a not-found error.
func (s *Service) ProductByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	found, err := s.store.Get(ctx, s.cols.Products, id, &product)
	if err != nil {
		return nil, storeFailure("Failed to load product", err)
	}
	if !found {
		return nil, NotFoundf("Product not found")
	}
	return &product, nil
}

// ProductBySlug resolves the slug through the slug index.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	var products []Product
	if err := s.store.Query(ctx, s.cols.Products, SlugIndex, slug, &products); err != nil {
		return nil, storeFailure("Failed to load product", err)
	}
	if len(products) == 0 {
		return nil, NotFoundf("Product not found")
	}
	return &products[0], nil
}

// FeaturedProducts returns the products flagged as featured.
func (s *Service) FeaturedProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.store.Query(ctx, s.cols.Products, FeaturedIndex, "true", &products); err != nil {
		return nil, storeFailure("Failed to load products", err)
	}
	return products, nil
}

// AllProducts scans the whole catalog.
func (s *Service) AllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.store.Scan(ctx, s.cols.Products, &products); err != nil {
		return nil, storeFailure("Failed to load products", err)
	}
	return products, nil
}
