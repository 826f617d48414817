package services

import (
	"context"
	"time"

	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CatalogService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCatalogService(logger *gecho.Logger, db *database.DB) *CatalogService {
	return &CatalogService{
		logger: logger,
		db:     db,
	}
}

// ListActiveProducts returns the storefront catalog: active products,
// newest first, with their category preloaded.
func (cs *CatalogService) ListActiveProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](cs.db).
		With("Category").
		Where("is_active", true).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// GetActiveBySlug returns the active product with the given slug.
// Inactive products are indistinguishable from absent ones.
func (cs *CatalogService) GetActiveBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		With("Category").
		Where("slug", slug).
		Where("is_active", true).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// GetActiveById is the add-to-cart lookup
func (cs *CatalogService) GetActiveById(ctx context.Context, productId uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		Where("id", productId).
		Where("is_active", true).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// ListAllProducts is the staff view: every product, active or not.
func (cs *CatalogService) ListAllProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](cs.db).
		With("Category").
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

func (cs *CatalogService) ListCategories(ctx context.Context) ([]tables.ProductCategory, error) {
	categories, err := database.Query[tables.ProductCategory](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

// CreateCategory inserts a category, deriving the slug from the name when
// none was supplied.
func (cs *CatalogService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.ProductCategory, error) {
	slug := req.Slug
	if slug == "" {
		slug = lib.Slugify(req.Name)
	}

	category := &tables.ProductCategory{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Slug:        slug,
	}

	category, err := database.Query[tables.ProductCategory](cs.db).Insert(ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Category created", gecho.Field("category_id", category.Id), gecho.Field("slug", category.Slug))

	return category, nil
}

// CreateProduct inserts a product under an existing category, deriving the
// slug from the name when none was supplied.
func (cs *CatalogService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	categoryId, err := uuid.Parse(req.CategoryId)
	if err != nil {
		return nil, lib.ErrNotFound
	}

	category, err := database.Query[tables.ProductCategory](cs.db).
		Where("id", categoryId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}

	slug := req.Slug
	if slug == "" {
		slug = lib.Slugify(req.Name)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &tables.Product{
		Id:          uuid.New(),
		CategoryId:  categoryId,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	product, err = database.Query[tables.Product](cs.db).Insert(ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Product created",
		gecho.Field("product_id", product.Id),
		gecho.Field("slug", product.Slug))

	return product, nil
}

// UpdateProduct overwrites the editable fields of an existing product
func (cs *CatalogService) UpdateProduct(ctx context.Context, productId uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		Where("id", productId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	categoryId, err := uuid.Parse(req.CategoryId)
	if err != nil {
		return nil, lib.ErrNotFound
	}

	slug := req.Slug
	if slug == "" {
		slug = product.Slug
	}

	isActive := product.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err = database.Query[tables.Product](cs.db).
		Where("id", productId).
		Update(ctx, map[string]any{
			"category_id": categoryId,
			"name":        req.Name,
			"slug":        slug,
			"description": req.Description,
			"price":       req.Price,
			"stock":       req.Stock,
			"image_url":   req.ImageURL,
			"is_active":   isActive,
			"updated_at":  time.Now(),
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return database.Query[tables.Product](cs.db).Where("id", productId).First(ctx)
}
