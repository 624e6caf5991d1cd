package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdul1ayev/Tickets/config"
	"github.com/Abdul1ayev/Tickets/models"
	"github.com/Abdul1ayev/Tickets/monitoring"
	"github.com/Abdul1ayev/Tickets/utils"
)

// CatalogService reads the public product catalog API. Responses are
// cached in redis and calls go through a circuit breaker so a flapping
// upstream fails fast instead of holding requests for the full timeout.
type CatalogService struct {
	baseURL  string
	hc       *http.Client
	breaker  *utils.CircuitBreaker
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewCatalogService(cfg *config.Config, redisClient *redis.Client) *CatalogService {
	return &CatalogService{
		baseURL: strings.TrimRight(cfg.CatalogBaseURL, "/"),
		hc: &http.Client{
			Timeout: cfg.CatalogTimeout,
		},
		breaker:  utils.NewCircuitBreaker("catalog"),
		redis:    redisClient,
		cacheTTL: cfg.CatalogCacheTTL,
	}
}

// ProductsByCategory lists the products of one numeric category.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	cacheKey := fmt.Sprintf("catalog:category:%d", categoryID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	var products []models.Product
	start := time.Now()
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return s.fetchProducts(ctx, categoryID, &products)
	})
	if err != nil {
		monitoring.TrackCatalogRequest("error", time.Since(start))
		return nil, err
	}
	monitoring.TrackCatalogRequest("ok", time.Since(start))

	if s.redis != nil {
		if data, err := json.Marshal(products); err == nil {
			s.redis.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}
	return products, nil
}

func (s *CatalogService) fetchProducts(ctx context.Context, categoryID int, out *[]models.Product) error {
	url := fmt.Sprintf("%s/products/?categoryId=%d", s.baseURL, categoryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
