package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
	"github.com/niksmo/sportshop/pkg/retry"
)

var _ port.CatalogProvider = (*Client)(nil)

const defaultTimeout = 5 * time.Second

// The upstream product payload. Pointer fields distinguish a missing
// required value from a zero one.
type productRecord struct {
	ID          *int64   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Featured    bool     `json:"featured"`
	Popular     bool     `json:"popular"`
}

// A Client fetches the product collection from the catalog provider.
type Client struct {
	httpClient  *http.Client
	url         string
	retryConfig retry.RetryConfig
}

func New(url string, timeout time.Duration, maxAttempts int) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Client{
		httpClient:  &http.Client{Timeout: timeout},
		url:         url,
		retryConfig: retry.RetryConfig{MaxAttempts: maxAttempts},
	}
}

// FetchProducts requests the catalog with a bounded retry. Records
// missing id, name or a valid price are dropped; an unparsable payload
// fails the whole fetch.
func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "provider.Client.FetchProducts"
	log := slog.With("op", op)

	body, err := retry.DoWithResult(ctx, c.retryConfig, func() ([]byte, error) {
		return c.get(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []productRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%s: unparsable payload: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(records))
	var dropped int
	for _, r := range records {
		if !r.valid() {
			dropped++
			continue
		}
		ps = append(ps, r.toDomain())
	}
	if dropped != 0 {
		log.Warn("dropped malformed records", "nDropped", dropped)
	}
	return ps, nil
}

func (c Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", res.Status)
	}
	return io.ReadAll(res.Body)
}

func (r productRecord) valid() bool {
	return r.ID != nil && r.Name != "" && r.Price != nil && *r.Price >= 0
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          *r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Price:       *r.Price,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Featured:    r.Featured,
		Popular:     r.Popular,
	}
}
