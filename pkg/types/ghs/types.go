// Package ghs defines the wire types of the GHS label search API.  They are
// shared by the HTTP server, the MCP tools and the Go client.
package ghs

// MaxBatchSize is the largest number of identifiers one search request may
// carry.
const MaxBatchSize = 100

// Match kinds reported in Result.MatchedBy.
const (
	MatchedByCAS   = "cas"
	MatchedByName  = "name"
	MatchedByAlias = "alias"
)

// Pictogram is a GHS hazard pictogram.
type Pictogram struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameZh string `json:"name_zh"`
	Icon   string `json:"icon"`
	Image  string `json:"image"`
}

// HazardStatement is one H-code with its English and Chinese texts.
type HazardStatement struct {
	Code   string `json:"code"`
	TextEN string `json:"text_en"`
	TextZH string `json:"text_zh"`
}

// Classification is an alternative classification report.
type Classification struct {
	Pictograms       []Pictogram       `json:"pictograms"`
	HazardStatements []HazardStatement `json:"hazard_statements"`
	SignalWord       string            `json:"signal_word,omitempty"`
	SignalWordZH     string            `json:"signal_word_zh,omitempty"`
	Source           string            `json:"source,omitempty"`
	ReportCount      string            `json:"report_count,omitempty"`
}

// Result is the outcome of searching one identifier.  The primary
// classification is flattened into the top level; other distinct reports
// are listed in OtherClassifications.
type Result struct {
	CASNumber string `json:"cas_number"`
	CID       int    `json:"cid,omitempty"`
	NameEN    string `json:"name_en,omitempty"`
	NameZH    string `json:"name_zh,omitempty"`

	Pictograms       []Pictogram       `json:"ghs_pictograms"`
	HazardStatements []HazardStatement `json:"hazard_statements"`
	SignalWord       string            `json:"signal_word,omitempty"`
	SignalWordZH     string            `json:"signal_word_zh,omitempty"`

	OtherClassifications       []Classification `json:"other_classifications"`
	HasMultipleClassifications bool             `json:"has_multiple_classifications"`

	Found bool   `json:"found"`
	Error string `json:"error,omitempty"`

	// MatchedBy is "cas", "name" or "alias".
	MatchedBy string `json:"matched_by,omitempty"`
	// Query is the raw input when it differs from CASNumber.
	Query string `json:"query,omitempty"`
}

// NameMatch is one dictionary hit of a name search.
type NameMatch struct {
	CASNumber string `json:"cas_number"`
	NameEN    string `json:"name_en"`
	NameZH    string `json:"name_zh"`
	Alias     bool   `json:"alias"`
}

// SearchRequest is the body of a batch search.  Entries are not validated
// here: a malformed entry becomes its own not-found result.
type SearchRequest struct {
	CASNumbers []string `json:"cas_numbers" validate:"required,max=100"`
}

// NameSearchResponse wraps name search hits.
type NameSearchResponse struct {
	Results []NameMatch `json:"results"`
}

// ExportRequest is the body of an export call.
type ExportRequest struct {
	Results []Result `json:"results" validate:"required,min=1,max=1000"`
	Format  string   `json:"format,omitempty" validate:"omitempty,oneof=xlsx csv excel"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// MessageResponse is a bare message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Detail  string            `json:"detail,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
