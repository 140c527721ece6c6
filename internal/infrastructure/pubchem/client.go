// Package pubchem implements the upstream gateway over the PubChem PUG REST
// and PUG View HTTP APIs.  All calls share one connection pool and one
// client-side rate limiter.
package pubchem

import (
	"context"
	"encoding/json"
	stdliberrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// Operation names, used as metric labels and log fields.
const (
	OpCIDByName          = "cid_by_name"
	OpCIDByXref          = "cid_by_xref"
	OpCIDBySubstanceXref = "cid_by_substance_xref"
	OpProperties         = "properties"
	OpSynonyms           = "synonyms"
	OpDescription        = "description"
	OpDocument           = "document"
)

// maxErrorBody bounds how much of a failed response is kept for the log.
const maxErrorBody = 512

// Config holds the client's endpoint, limits and timeouts.
type Config struct {
	BaseURL           string
	MetadataTimeout   time.Duration
	DocumentTimeout   time.Duration
	MaxConns          int
	MaxIdleConns      int
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pubchem.ncbi.nlm.nih.gov"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.MetadataTimeout <= 0 {
		cfg.MetadataTimeout = 15 * time.Second
	}
	if cfg.DocumentTimeout <= 0 {
		cfg.DocumentTimeout = 30 * time.Second
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 20
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "GHS-label-quick-search"
	}
}

// Client is the PubChem gateway.  It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *prometheus.AppMetrics
	logger     logging.Logger
}

var _ chem_extractor.Gateway = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics records per-operation counters and latencies.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the client's logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a Client with a bounded connection pool.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	applyDefaults(&cfg)
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid pubchem base url")
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxConnsPerHost:     cfg.MaxConns,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConns,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("pubchem")
	return c, nil
}

// Close releases idle pooled connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ---------------------------------------------------------------------------
// Compound id lookups
// ---------------------------------------------------------------------------

type identifierListResponse struct {
	IdentifierList struct {
		CID []int `json:"CID"`
	} `json:"IdentifierList"`
}

// CIDByName implements chem_extractor.Gateway.
func (c *Client) CIDByName(ctx context.Context, name string) (int, error) {
	var resp identifierListResponse
	path := "/rest/pug/compound/name/" + url.PathEscape(name) + "/cids/JSON"
	if err := c.getJSON(ctx, OpCIDByName, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return 0, err
	}
	return firstCID(resp.IdentifierList.CID, name)
}

// CIDByXref implements chem_extractor.Gateway.
func (c *Client) CIDByXref(ctx context.Context, cas string) (int, error) {
	var resp identifierListResponse
	path := "/rest/pug/compound/xref/rn/" + url.PathEscape(cas) + "/cids/JSON"
	if err := c.getJSON(ctx, OpCIDByXref, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return 0, err
	}
	return firstCID(resp.IdentifierList.CID, cas)
}

// substanceCIDs accepts both a bare id and a list of ids.
type substanceCIDs []int

func (s *substanceCIDs) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single int
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = []int{single}
	return nil
}

// CIDBySubstanceXref implements chem_extractor.Gateway.
func (c *Client) CIDBySubstanceXref(ctx context.Context, cas string) (int, error) {
	var resp struct {
		InformationList struct {
			Information []struct {
				CID substanceCIDs `json:"CID"`
			} `json:"Information"`
		} `json:"InformationList"`
	}
	path := "/rest/pug/substance/xref/rn/" + url.PathEscape(cas) + "/cids/JSON"
	if err := c.getJSON(ctx, OpCIDBySubstanceXref, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return 0, err
	}
	if len(resp.InformationList.Information) == 0 {
		return 0, noRecord(cas)
	}
	return firstCID(resp.InformationList.Information[0].CID, cas)
}

func firstCID(ids []int, key string) (int, error) {
	if len(ids) == 0 || ids[0] <= 0 {
		return 0, noRecord(key)
	}
	return ids[0], nil
}

// ---------------------------------------------------------------------------
// Naming endpoints
// ---------------------------------------------------------------------------

// Properties implements chem_extractor.Gateway.
func (c *Client) Properties(ctx context.Context, cid int) (chem_extractor.Properties, error) {
	var resp struct {
		PropertyTable struct {
			Properties []chem_extractor.Properties `json:"Properties"`
		} `json:"PropertyTable"`
	}
	path := fmt.Sprintf("/rest/pug/compound/cid/%d/property/IUPACName,Title/JSON", cid)
	if err := c.getJSON(ctx, OpProperties, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return chem_extractor.Properties{}, err
	}
	if len(resp.PropertyTable.Properties) == 0 {
		return chem_extractor.Properties{}, noRecord(fmt.Sprintf("cid=%d", cid))
	}
	return resp.PropertyTable.Properties[0], nil
}

// Synonyms implements chem_extractor.Gateway.
func (c *Client) Synonyms(ctx context.Context, cid int) ([]string, error) {
	var resp struct {
		InformationList struct {
			Information []struct {
				Synonym []string `json:"Synonym"`
			} `json:"Information"`
		} `json:"InformationList"`
	}
	path := fmt.Sprintf("/rest/pug/compound/cid/%d/synonyms/JSON", cid)
	if err := c.getJSON(ctx, OpSynonyms, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return nil, err
	}
	if len(resp.InformationList.Information) == 0 {
		return nil, noRecord(fmt.Sprintf("cid=%d", cid))
	}
	return resp.InformationList.Information[0].Synonym, nil
}

// Description implements chem_extractor.Gateway.  The first information
// entry carrying a title wins.
func (c *Client) Description(ctx context.Context, cid int) (chem_extractor.Description, error) {
	var resp struct {
		InformationList struct {
			Information []chem_extractor.Description `json:"Information"`
		} `json:"InformationList"`
	}
	path := fmt.Sprintf("/rest/pug/compound/cid/%d/description/JSON", cid)
	if err := c.getJSON(ctx, OpDescription, path, c.cfg.MetadataTimeout, &resp); err != nil {
		return chem_extractor.Description{}, err
	}
	if len(resp.InformationList.Information) == 0 {
		return chem_extractor.Description{}, noRecord(fmt.Sprintf("cid=%d", cid))
	}
	return resp.InformationList.Information[0], nil
}

// Document implements chem_extractor.Gateway.
func (c *Client) Document(ctx context.Context, cid int) (*chem_extractor.Document, error) {
	var doc chem_extractor.Document
	path := fmt.Sprintf("/rest/pug_view/data/compound/%d/JSON", cid)
	if err := c.getJSON(ctx, OpDocument, path, c.cfg.DocumentTimeout, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

// getJSON waits for the rate limiter, performs one bounded GET and decodes
// the body into dest.  Every outcome is mapped to an AppError with a SRC_*
// code, or to the context's error when ctx ended first.
func (c *Client) getJSON(ctx context.Context, op, path string, timeout time.Duration, dest interface{}) (err error) {
	start := time.Now()
	notFound := false
	defer func() {
		c.metrics.RecordUpstream(op, time.Since(start), err, notFound)
		logging.LogUpstreamCall(c.logger, op, start, err, logging.String("path", path))
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, errors.ErrCodeDataSourceRateLimited, "pubchem rate limiter rejected the request")
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "build pubchem request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if stdliberrors.Is(err, context.DeadlineExceeded) {
			return errors.Wrap(err, errors.ErrCodeTimeout, "pubchem request timed out").WithDetail(path)
		}
		return errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "pubchem request failed").WithDetail(path)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		notFound = true
		_, _ = io.Copy(io.Discard, resp.Body)
		return noRecord(path)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Errorf(errors.ErrCodeDataSourceRateLimited, "pubchem returned %d", resp.StatusCode).
			WithDetail(strings.TrimSpace(string(body)))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Errorf(errors.ErrCodeDataSourceBadStatus, "pubchem returned %d", resp.StatusCode).
			WithDetail(strings.TrimSpace(string(body)))
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, errors.ErrCodeDataSourceParseError, "decode pubchem response").WithDetail(path)
	}
	return nil
}

func noRecord(detail string) error {
	return errors.New(errors.ErrCodeDataSourceNoRecord, "pubchem has no matching record").WithDetail(detail)
}
