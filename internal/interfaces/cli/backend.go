package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rjsky311/GHS-label-quick-search/internal/app"
	"github.com/rjsky311/GHS-label-quick-search/internal/application/export"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/client"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// Backend is what the query commands run against: the in-process search
// core or a remote API server.
type Backend interface {
	// Search resolves each query as a CAS number or a name.  Output order
	// matches input order.
	Search(ctx context.Context, queries []string) ([]ghs.Result, error)
	SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error)
	Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error)
	// Export renders results as format ("xlsx" or "csv") into w.
	Export(ctx context.Context, format export.Format, results []ghs.Result, w io.Writer) error
	Close()
}

func newBackend(c *CLIContext) (Backend, error) {
	if c.ServerAddr != "" {
		return newRemoteBackend(c.ServerAddr, c.Timeout, c.Logger)
	}
	a, err := app.New(c.Config, c.Logger)
	if err != nil {
		return nil, err
	}
	return &localBackend{app: a}, nil
}

// ---------------------------------------------------------------------------
// In-process
// ---------------------------------------------------------------------------

type localBackend struct {
	app *app.App
}

func (b *localBackend) Search(ctx context.Context, queries []string) ([]ghs.Result, error) {
	return b.app.Search.SearchBatchAny(ctx, queries)
}

func (b *localBackend) SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error) {
	return b.app.Search.SearchByName(query, b.app.Config.Search.NameSearchLimit), nil
}

func (b *localBackend) Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error) {
	return b.app.Search.Pictograms(), nil
}

func (b *localBackend) Export(ctx context.Context, format export.Format, results []ghs.Result, w io.Writer) error {
	return export.Write(w, format, results)
}

func (b *localBackend) Close() { b.app.Close() }

// ---------------------------------------------------------------------------
// Remote
// ---------------------------------------------------------------------------

// remoteAPI is the part of pkg/client the remote backend uses.
type remoteAPI interface {
	Search(ctx context.Context, casNumbers []string) ([]ghs.Result, error)
	SearchOne(ctx context.Context, query string) (ghs.Result, error)
	SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error)
	Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error)
	Export(ctx context.Context, format string, results []ghs.Result, w io.Writer) error
}

type remoteBackend struct {
	api remoteAPI
}

// clientLogger adapts logging.Logger to the printf-style client logger.
type clientLogger struct{ l logging.Logger }

func (c clientLogger) Debugf(format string, args ...interface{}) { c.l.Debug(fmt.Sprintf(format, args...)) }
func (c clientLogger) Infof(format string, args ...interface{})  { c.l.Info(fmt.Sprintf(format, args...)) }
func (c clientLogger) Errorf(format string, args ...interface{}) { c.l.Error(fmt.Sprintf(format, args...)) }

func newRemoteBackend(addr string, timeout time.Duration, logger logging.Logger) (*remoteBackend, error) {
	opts := []client.Option{client.WithUserAgent("ghsq/" + client.Version)}
	if timeout > 0 {
		opts = append(opts, client.WithTimeout(timeout))
	}
	if logger != nil {
		opts = append(opts, client.WithLogger(clientLogger{logger.Named("client")}))
	}
	c, err := client.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &remoteBackend{api: c}, nil
}

// Search sends CAS-shaped queries in one batch call and the rest one by one
// through the auto-detecting single search endpoint.
func (b *remoteBackend) Search(ctx context.Context, queries []string) ([]ghs.Result, error) {
	results := make([]ghs.Result, len(queries))

	var casIdx []int
	var cas []string
	for i, q := range queries {
		if chem_extractor.LooksLikeCAS(q) {
			casIdx = append(casIdx, i)
			cas = append(cas, q)
			continue
		}
		r, err := b.api.SearchOne(ctx, q)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	for start := 0; start < len(cas); start += ghs.MaxBatchSize {
		end := min(start+ghs.MaxBatchSize, len(cas))
		batch, err := b.api.Search(ctx, cas[start:end])
		if err != nil {
			return nil, err
		}
		for j, r := range batch {
			results[casIdx[start+j]] = r
		}
	}
	return results, nil
}

func (b *remoteBackend) SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error) {
	return b.api.SearchByName(ctx, query)
}

func (b *remoteBackend) Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error) {
	return b.api.Pictograms(ctx)
}

func (b *remoteBackend) Export(ctx context.Context, format export.Format, results []ghs.Result, w io.Writer) error {
	return b.api.Export(ctx, string(format), results, w)
}

func (b *remoteBackend) Close() {}
