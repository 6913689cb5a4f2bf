package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
	"golang.org/x/time/rate"
)

var _ port.ProductQuerier = (*Client)(nil)
var _ port.ProductGetter = (*Client)(nil)
var _ port.VariantsLister = (*Client)(nil)
var _ port.ShopProductsLister = (*Client)(nil)
var _ port.ProductRemover = (*Client)(nil)
var _ port.ShopStatsFetcher = (*Client)(nil)

var ErrNotFound = errors.New("not found")

// StatusError is a non-success HTTP response from the catalog backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

const defaultTimeout = 10 * time.Second

// Client talks to the REST catalog backend. Outbound calls pass a rate
// limiter so a misbehaving caller cannot storm the backend. When a
// session watcher is attached, its bearer token goes on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	sessions   port.SessionWatcher
}

type ClientOpt func(*Client)

func HTTPClientOpt(hc *http.Client) ClientOpt {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func RateLimitOpt(rps float64, burst int) ClientOpt {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func SessionOpt(sessions port.SessionWatcher) ClientOpt {
	return func(c *Client) {
		c.sessions = sessions
	}
}

func New(baseURL string, opts ...ClientOpt) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProducts(
	ctx context.Context, q domain.CatalogQuery,
) (domain.CatalogPage, error) {
	const op = "Client.ListProducts"

	var env pageEnvelope
	err := c.getJSON(ctx, "/products", encodeQuery(q), &env)
	if err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.CatalogPage{Content: toDomainList(env.Content), Last: env.Last}, nil
}

func (c *Client) GetProduct(
	ctx context.Context, productID string,
) (domain.ProductRecord, error) {
	const op = "Client.GetProduct"

	var p product
	err := c.getJSON(ctx, "/products/"+url.PathEscape(productID), nil, &p)
	if err != nil {
		return domain.ProductRecord{}, fmt.Errorf("%s: %w", op, err)
	}
	return p.toDomain(), nil
}

func (c *Client) ListVariants(
	ctx context.Context, modelNo string,
) ([]domain.ProductRecord, error) {
	const op = "Client.ListVariants"

	var ps []product
	err := c.getJSON(ctx, "/products/variants/"+url.PathEscape(modelNo), nil, &ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainList(ps), nil
}

func (c *Client) ListShopProducts(
	ctx context.Context, shopID string,
) ([]domain.ProductRecord, error) {
	const op = "Client.ListShopProducts"

	var ps []product
	err := c.getJSON(ctx, "/products/shop/"+url.PathEscape(shopID), nil, &ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainList(ps), nil
}

func (c *Client) RemoveProduct(ctx context.Context, productID string) error {
	const op = "Client.RemoveProduct"

	resp, err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(productID), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drain(resp)

	if err := statusErr(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) FetchShopStats(ctx context.Context) (domain.ShopStats, error) {
	const op = "Client.FetchShopStats"

	var s shopStats
	err := c.getJSON(ctx, "/admin/shops/stats", nil, &s)
	if err != nil {
		return domain.ShopStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.ShopStats{
		Pending:  s.Pending,
		Approved: s.Approved,
		Rejected: s.Rejected,
	}, nil
}

func (c *Client) getJSON(
	ctx context.Context, path string, query url.Values, out any,
) error {
	resp, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}
	defer drain(resp)

	if err := statusErr(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(
	ctx context.Context, method, path string, query url.Values,
) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessions != nil {
		if sess := c.sessions.Current(); sess.SignedIn() {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	return c.httpClient.Do(req)
}

func statusErr(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(string(body)))
	}
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
