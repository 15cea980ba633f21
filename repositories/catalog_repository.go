package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shoe-store/models"
)

// ErrProductNotFound maps an upstream 404 on a product detail fetch.
var ErrProductNotFound = errors.New("product not found")

const (
	productListCacheKey = "products_list"
	productListCacheTTL = 5 * time.Minute
)

type CatalogRepository struct {
	client *Client
}

func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

// ListProducts fetches the catalog, serving from the Redis cache when it is
// configured and warm.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				return products, nil
			}
		}
	}

	var products []models.Product
	if err := r.client.getJSON(ctx, "/productos", &products); err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			models.RedisClient.Set(ctx, productListCacheKey, string(jsonData), productListCacheTTL)
		}
	}
	return products, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id int) (*models.ProductDetail, error) {
	var product models.ProductDetail
	err := r.client.getJSON(ctx, fmt.Sprintf("/productos/%d", id), &product)
	if err != nil {
		var upErr *UpstreamError
		if errors.As(err, &upErr) && upErr.StatusCode == 404 {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) PopularProducts(ctx context.Context) ([]models.PopularProduct, error) {
	var products []models.PopularProduct
	if err := r.client.getJSON(ctx, "/ecommerce/productos/populares", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) AudienceProducts(ctx context.Context, segment string) ([]models.PopularProduct, error) {
	var products []models.PopularProduct
	if err := r.client.getJSON(ctx, "/ecommerce/productos/audience/"+segment, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct saves a new product and drops the stale catalog cache.
func (r *CatalogRepository) CreateProduct(ctx context.Context, product models.NewProduct) error {
	if err := r.client.postJSON(ctx, "/guardarProductos", product, nil); err != nil {
		return err
	}
	r.invalidateCache(ctx)
	return nil
}

func (r *CatalogRepository) invalidateCache(ctx context.Context) {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(ctx, productListCacheKey)
}
