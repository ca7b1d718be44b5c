package pixabay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pixgallery/internal/config"
	"pixgallery/internal/domain"
	"pixgallery/internal/logging"
)

// ErrMissingAPIKey is returned by Fetch when no API key is configured
var ErrMissingAPIKey = errors.New("missing Pixabay API key (set PIXABAY_API_KEY or api.key in the config file)")

// maxBodySize caps how much of a response is read
const maxBodySize = 4 << 20

// Client fetches image search pages from the Pixabay API
type Client struct {
	apiKey      string
	endpoint    string
	perPage     int
	imageType   string
	orientation string
	safeSearch  bool
	client      *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a client from the API section of the config
func NewClient(cfg config.APIConfig) *Client {
	cfg.Validate()

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &Client{
		apiKey:      cfg.Key,
		endpoint:    cfg.BaseURL,
		perPage:     cfg.PerPage,
		imageType:   cfg.ImageType,
		orientation: cfg.Orientation,
		safeSearch:  cfg.SafeSearch,
		client:      &http.Client{Timeout: cfg.Timeout()},
		limiter:     rate.NewLimiter(limit, 1),
	}
}

// PerPage returns the page size sent with every request
func (c *Client) PerPage() int {
	return c.perPage
}

// Available returns true if an API key is configured
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Fetch retrieves one page of results for query. A cancelled ctx is
// reported as the context error itself so callers can recognise it.
func (c *Client) Fetch(ctx context.Context, query string, page int) (domain.Page, error) {
	if !c.Available() {
		return domain.Page{}, ErrMissingAPIKey
	}
	if page < 1 {
		page = 1
	}

	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return domain.Page{}, ctx.Err()
		}
		return domain.Page{}, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(query, page), nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Page{}, ctx.Err()
		}
		return domain.Page{}, transportError("network error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctx.Err() != nil {
			return domain.Page{}, ctx.Err()
		}
		return domain.Page{}, transportError("read response", err)
	}

	logging.Debug("pixabay: response", "query", query, "page", page, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.Page{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.Page{}, fmt.Errorf("parse response: %w", err)
	}

	items := make([]domain.ImageResult, 0, len(parsed.Hits))
	for _, h := range parsed.Hits {
		items = append(items, h.toDomain())
	}

	return domain.Page{
		Items: items,
		Meta: domain.PageMeta{
			CurrentPage: page,
			TotalHits:   parsed.TotalHits,
			PerPage:     c.perPage,
		},
	}, nil
}

func (c *Client) requestURL(query string, page int) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("image_type", c.imageType)
	params.Set("orientation", c.orientation)
	params.Set("safesearch", strconv.FormatBool(c.safeSearch))

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + params.Encode()
}

// transportError drops the request URL from a *url.Error since it carries the API key
func transportError(prefix string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
