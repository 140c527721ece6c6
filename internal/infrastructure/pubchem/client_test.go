package pubchem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	"github.com/rjsky311/GHS-label-quick-search/internal/testutil"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// canned maps request paths to (status, body).
type canned map[string]struct {
	status int
	body   string
}

func newTestClient(t *testing.T, routes canned, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		route, ok := routes[r.URL.EscapedPath()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"Fault":{"Code":"PUGREST.NotFound","Message":"No CID found"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.status)
		_, _ = w.Write([]byte(route.body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000, Burst: 100}, opts...)
	require.NoError(t, err)
	return c, srv
}

func TestClient_CIDLookups(t *testing.T) {
	c, _ := newTestClient(t, canned{
		"/rest/pug/compound/name/64-17-5/cids/JSON":      {200, `{"IdentifierList":{"CID":[702]}}`},
		"/rest/pug/compound/xref/rn/64-17-5/cids/JSON":   {200, `{"IdentifierList":{"CID":[702, 5]}}`},
		"/rest/pug/substance/xref/rn/64-17-5/cids/JSON":  {200, `{"InformationList":{"Information":[{"SID":1,"CID":[702]}]}}`},
		"/rest/pug/substance/xref/rn/7732-18-5/cids/JSON": {200, `{"InformationList":{"Information":[{"SID":2,"CID":962}]}}`},
		"/rest/pug/compound/name/0-00-0/cids/JSON":       {200, `{"IdentifierList":{"CID":[0]}}`},
	})
	ctx := context.Background()

	cid, err := c.CIDByName(ctx, "64-17-5")
	require.NoError(t, err)
	assert.Equal(t, 702, cid)

	cid, err = c.CIDByXref(ctx, "64-17-5")
	require.NoError(t, err)
	assert.Equal(t, 702, cid)

	cid, err = c.CIDBySubstanceXref(ctx, "64-17-5")
	require.NoError(t, err)
	assert.Equal(t, 702, cid)

	cid, err = c.CIDBySubstanceXref(ctx, "7732-18-5")
	require.NoError(t, err)
	assert.Equal(t, 962, cid, "a bare id is accepted as well as a list")

	_, err = c.CIDByName(ctx, "0-00-0")
	assert.True(t, errors.IsNotFound(err))

	_, err = c.CIDByName(ctx, "999-99-9")
	assert.True(t, errors.IsNotFound(err))
}

func TestClient_NameIsPathEscaped(t *testing.T) {
	c, _ := newTestClient(t, canned{
		"/rest/pug/compound/name/sodium%20chloride/cids/JSON": {200, `{"IdentifierList":{"CID":[5234]}}`},
	})
	cid, err := c.CIDByName(context.Background(), "sodium chloride")
	require.NoError(t, err)
	assert.Equal(t, 5234, cid)
}

func TestClient_NamingEndpoints(t *testing.T) {
	c, _ := newTestClient(t, canned{
		"/rest/pug/compound/cid/702/property/IUPACName,Title/JSON": {200, `{"PropertyTable":{"Properties":[{"CID":702,"IUPACName":"ethanol","Title":"Ethanol"}]}}`},
		"/rest/pug/compound/cid/702/synonyms/JSON":                 {200, `{"InformationList":{"Information":[{"CID":702,"Synonym":["ethanol","ethyl alcohol","乙醇"]}]}}`},
		"/rest/pug/compound/cid/702/description/JSON":              {200, `{"InformationList":{"Information":[{"CID":702,"Title":"Ethanol"},{"CID":702,"Description":"..."}]}}`},
		"/rest/pug/compound/cid/5/synonyms/JSON":                   {200, `{"InformationList":{"Information":[]}}`},
	})
	ctx := context.Background()

	props, err := c.Properties(ctx, 702)
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", props.Title)
	assert.Equal(t, "ethanol", props.IUPACName)

	syn, err := c.Synonyms(ctx, 702)
	require.NoError(t, err)
	assert.Equal(t, []string{"ethanol", "ethyl alcohol", "乙醇"}, syn)

	desc, err := c.Description(ctx, 702)
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", desc.Title)

	_, err = c.Synonyms(ctx, 5)
	assert.True(t, errors.IsNotFound(err))
}

func TestClient_Document(t *testing.T) {
	c, _ := newTestClient(t, canned{
		"/rest/pug_view/data/compound/702/JSON": {200, `{"Record":{"RecordNumber":702,"RecordTitle":"Ethanol","Section":[{"TOCHeading":"Safety and Hazards"}]}}`},
	})
	doc, err := c.Document(context.Background(), 702)
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", doc.Title())
	require.Len(t, doc.Record.Sections, 1)
}

func TestClient_ErrorMapping(t *testing.T) {
	c, _ := newTestClient(t, canned{
		"/rest/pug/compound/cid/1/synonyms/JSON": {503, `{"Fault":{"Code":"PUGREST.ServerBusy"}}`},
		"/rest/pug/compound/cid/2/synonyms/JSON": {500, `oops`},
		"/rest/pug/compound/cid/3/synonyms/JSON": {200, `{not json`},
	})
	ctx := context.Background()

	_, err := c.Synonyms(ctx, 1)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDataSourceRateLimited))

	_, err = c.Synonyms(ctx, 2)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDataSourceBadStatus))

	_, err = c.Synonyms(ctx, 3)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDataSourceParseError))
}

func TestClient_PerCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, MetadataTimeout: 30 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = c.CIDByName(context.Background(), "64-17-5")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClient_CallerCancellation(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err = c.Document(ctx, 702)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_MetricsAndLogging(t *testing.T) {
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "test"}, logging.NewNopLogger())
	require.NoError(t, err)
	metrics := prometheus.NewAppMetrics(collector)
	logger := testutil.NewMockLogger()

	c, _ := newTestClient(t, canned{
		"/rest/pug/compound/name/64-17-5/cids/JSON": {200, `{"IdentifierList":{"CID":[702]}}`},
	}, WithMetrics(metrics), WithLogger(logger))

	_, err = c.CIDByName(context.Background(), "64-17-5")
	require.NoError(t, err)
	_, _ = c.CIDByName(context.Background(), "999-99-9")

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `test_upstream_requests_total{operation="cid_by_name",outcome="ok"} 1`)
	assert.Contains(t, body, `test_upstream_requests_total{operation="cid_by_name",outcome="not_found"} 1`)

	assert.True(t, logger.HasMessage("debug", "upstream call completed"))
	assert.True(t, logger.HasMessage("debug", "upstream call failed"))
	for _, m := range logger.GetMessages() {
		assert.True(t, strings.HasPrefix(m.Logger, "pubchem"))
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "::not a url"})
	require.Error(t, err)
}
