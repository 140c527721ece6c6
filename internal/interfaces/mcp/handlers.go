package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/search"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// Handlers holds dependencies for the tool handlers.
type Handlers struct {
	svc       search.Service
	logger    logging.Logger
	nameLimit int
}

// HandlersOption configures Handlers.
type HandlersOption func(*Handlers)

// WithNameLimit caps name matches per call.
func WithNameLimit(n int) HandlersOption {
	return func(h *Handlers) {
		if n > 0 {
			h.nameLimit = n
		}
	}
}

// NewHandlers creates the tool handlers.
func NewHandlers(svc search.Service, logger logging.Logger, opts ...HandlersOption) *Handlers {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	h := &Handlers{
		svc:       svc,
		logger:    logger.Named("mcp"),
		nameLimit: chem_extractor.DefaultNameSearchLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SearchRequest is the ghs_search input.
type SearchRequest struct {
	Queries []string `json:"queries"`
}

// NameRequest is the ghs_search_by_name input.
type NameRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// HandleSearch runs a batch search; each entry is auto-detected as CAS or
// name.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.New(errors.ErrCodeBadRequest, "invalid arguments").WithDetail(err.Error())), nil
	}
	queries := make([]string, 0, len(input.Queries))
	for _, q := range input.Queries {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		return errorResult(errors.New(errors.ErrCodeValidation, "queries must contain at least one non-empty entry")), nil
	}

	results, err := h.svc.SearchBatchAny(ctx, queries)
	if err != nil {
		h.logger.Warn("tool search failed", logging.Int("items", len(queries)), logging.Err(err))
		return errorResult(err), nil
	}
	return successResult(results)
}

// HandleSearchByName lists dictionary matches.
func (h *Handlers) HandleSearchByName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NameRequest](req)
	if err != nil {
		return errorResult(errors.New(errors.ErrCodeBadRequest, "invalid arguments").WithDetail(err.Error())), nil
	}

	limit := h.nameLimit
	if input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}
	query := strings.TrimSpace(input.Query)
	matches := []ghs.NameMatch{}
	if utf8.RuneCountInString(query) >= chem_extractor.MinNameQueryLength {
		if found := h.svc.SearchByName(query, limit); found != nil {
			matches = found
		}
	}
	return successResult(ghs.NameSearchResponse{Results: matches})
}

// HandlePictograms returns the pictogram table.
func (h *Handlers) HandlePictograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.svc.Pictograms())
}

// errorResult renders err as a tool error.  Server-side details are not
// exposed.
func errorResult(err error) *mcp.CallToolResult {
	if ctxErr := errors.FromContext(err); ctxErr != nil {
		err = ctxErr
	}

	payload := ghs.ErrorResponse{
		Code:    errors.ErrCodeInternal.String(),
		Message: errors.DefaultMessageForCode(errors.ErrCodeInternal),
	}
	var ae *errors.AppError
	if errors.As(err, &ae) {
		payload.Code = ae.Code.String()
		if ae.HTTPStatus() < http.StatusInternalServerError {
			payload.Message = ae.Message
			payload.Detail = ae.Detail
		} else {
			payload.Message = errors.DefaultMessageForCode(ae.Code)
		}
	}

	content, _ := json.Marshal(map[string]any{"error": payload})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
