package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/export"
	"github.com/rjsky311/GHS-label-quick-search/internal/application/search"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// BatchIDHeader carries the correlation id of a batch search response.
const BatchIDHeader = "X-Batch-ID"

// SearchHandler serves the search, name lookup, pictogram and export
// endpoints.
type SearchHandler struct {
	svc         search.Service
	logger      logging.Logger
	maxBodySize int64
	nameLimit   int
}

// SearchHandlerOption configures a SearchHandler.
type SearchHandlerOption func(*SearchHandler)

// WithMaxBodySize bounds JSON request bodies.
func WithMaxBodySize(n int64) SearchHandlerOption {
	return func(h *SearchHandler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// WithNameLimit caps the number of name matches returned.
func WithNameLimit(n int) SearchHandlerOption {
	return func(h *SearchHandler) {
		if n > 0 {
			h.nameLimit = n
		}
	}
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc search.Service, logger logging.Logger, opts ...SearchHandlerOption) *SearchHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	h := &SearchHandler{
		svc:         svc,
		logger:      logger.Named("http"),
		maxBodySize: defaultMaxBodySize,
		nameLimit:   chem_extractor.DefaultNameSearchLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root handles GET /api/.
func (h *SearchHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ghs.MessageResponse{Message: "GHS Label Quick Search API"})
}

// SearchBatch handles POST /api/search.
func (h *SearchHandler) SearchBatch(w http.ResponseWriter, r *http.Request) {
	var req ghs.SearchRequest
	if err := decodeJSON(r, h.maxBodySize, &req); err != nil {
		writeAppError(w, err)
		return
	}

	batchID := uuid.NewString()
	ctx := search.WithBatchID(r.Context(), batchID)

	results, err := h.svc.SearchBatch(ctx, req.CASNumbers)
	if err != nil {
		logging.FromContext(r.Context(), h.logger).Warn("batch search rejected",
			logging.String("batch_id", batchID),
			logging.Int("items", len(req.CASNumbers)),
			logging.Err(err))
		writeAppError(w, err)
		return
	}
	w.Header().Set(BatchIDHeader, batchID)
	writeJSON(w, http.StatusOK, results)
}

// SearchOne handles GET /api/search/{query}.  The query may be a CAS number
// or a chemical name.
func (h *SearchHandler) SearchOne(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.SearchAny(r.Context(), pathParam(r, "query")))
}

// SearchByName handles GET /api/search-by-name/{query}.
func (h *SearchHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(pathParam(r, "query"))
	matches := []ghs.NameMatch{}
	if utf8.RuneCountInString(query) >= chem_extractor.MinNameQueryLength {
		if found := h.svc.SearchByName(query, h.nameLimit); found != nil {
			matches = found
		}
	}
	writeJSON(w, http.StatusOK, ghs.NameSearchResponse{Results: matches})
}

// Pictograms handles GET /api/ghs-pictograms.
func (h *SearchHandler) Pictograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Pictograms())
}

// Export handles POST /api/export/{format}.  The path segment selects the
// file type; the body's format field is informational.
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(pathParam(r, "format"))
	if err != nil {
		writeAppError(w, err)
		return
	}

	var req ghs.ExportRequest
	if err := decodeJSON(r, h.maxBodySize, &req); err != nil {
		writeAppError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, req.Results); err != nil {
		h.logger.Error("export failed",
			logging.String("format", string(format)),
			logging.Int("rows", len(req.Results)),
			logging.Err(err))
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// pathParam returns the decoded route parameter.  chi matches on RawPath when
// the client used a non-canonical escaping, leaving the value escaped.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
