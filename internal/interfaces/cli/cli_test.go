package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/go-redis/redismock/v9"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/export"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/database/redis"
	"github.com/rjsky311/GHS-label-quick-search/internal/testutil"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

var ethanol = ghs.Result{
	CASNumber:        "64-17-5",
	NameEN:           "Ethanol",
	NameZH:           "乙醇",
	Pictograms:       []ghs.Pictogram{{Code: "GHS02", Name: "Flammable", NameZh: "易燃物", Icon: "🔥"}},
	HazardStatements: []ghs.HazardStatement{{Code: "H225", TextEN: "Highly flammable liquid and vapour", TextZH: "高度易燃液體和蒸氣"}},
	SignalWord:       "Danger",
	SignalWordZH:     "危險",
	Found:            true,
}

// fakeBackend answers from fixed data and records calls.
type fakeBackend struct {
	queries   []string
	nameQuery string
	exported  export.Format
	closed    bool
}

func (b *fakeBackend) Search(ctx context.Context, queries []string) ([]ghs.Result, error) {
	b.queries = queries
	out := make([]ghs.Result, len(queries))
	for i, q := range queries {
		if q == "64-17-5" || q == "ethanol" {
			out[i] = ethanol
			if q != ethanol.CASNumber {
				out[i].Query = q
			}
			continue
		}
		out[i] = ghs.Result{CASNumber: q, Error: "no GHS classification found"}
	}
	return out, nil
}

func (b *fakeBackend) SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error) {
	b.nameQuery = query
	return []ghs.NameMatch{{CASNumber: "64-17-5", NameEN: "Ethanol", NameZH: "乙醇"}}, nil
}

func (b *fakeBackend) Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error) {
	return map[string]ghs.Pictogram{
		"GHS07": {Code: "GHS07", Name: "Exclamation Mark", NameZh: "刺激性/有害"},
		"GHS02": {Code: "GHS02", Name: "Flammable", NameZh: "易燃物"},
	}, nil
}

func (b *fakeBackend) Export(ctx context.Context, format export.Format, results []ghs.Result, w io.Writer) error {
	b.exported = format
	return export.Write(w, format, results)
}

func (b *fakeBackend) Close() { b.closed = true }

func run(t *testing.T, opts []Option, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(append([]Option{WithLogger(testutil.NewMockLogger())}, opts...)...)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "ghsq", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"search", "name", "pictograms", "export", "serve", "mcp", "cache"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "log-level", "output", "timeout", "server", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommand_InvalidOutput(t *testing.T) {
	_, err := run(t, []Option{WithBackend(&fakeBackend{})}, "-o", "yaml", "search", "64-17-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestSearch_Text(t *testing.T) {
	b := &fakeBackend{}
	out, err := run(t, []Option{WithBackend(b)}, "search", "64-17-5", "50-00-0")
	require.NoError(t, err)

	assert.Equal(t, []string{"64-17-5", "50-00-0"}, b.queries)
	assert.True(t, b.closed)
	assert.Contains(t, out, "64-17-5  Ethanol (乙醇)")
	assert.Contains(t, out, "Signal:     危險")
	assert.Contains(t, out, "GHS02 (易燃物)")
	assert.Contains(t, out, "H225: 高度易燃液體和蒸氣")
	assert.Contains(t, out, "not found: no GHS classification found")
}

func TestSearch_TextShowsQuery(t *testing.T) {
	out, err := run(t, []Option{WithBackend(&fakeBackend{})}, "search", "ethanol")
	require.NoError(t, err)
	assert.Contains(t, out, "(query: ethanol)")
}

func TestSearch_JSON(t *testing.T) {
	out, err := run(t, []Option{WithBackend(&fakeBackend{})}, "search", "-o", "json", "64-17-5")
	require.NoError(t, err)

	var results []ghs.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Ethanol", results[0].NameEN)
}

func TestSearch_Table(t *testing.T) {
	out, err := run(t, []Option{WithBackend(&fakeBackend{})}, "--output", "table", "search", "64-17-5", "50-00-0")
	require.NoError(t, err)

	assert.Equal(t, "64-17-5", cellsOnLine(t, out, "Ethanol")[0])
	assert.Contains(t, cellsOnLine(t, out, "Ethanol"), "H225: 高度易燃液體和蒸氣")
	assert.Contains(t, cellsOnLine(t, out, "50-00-0"), "not found: no GHS classification found")
}

// cellsOnLine returns the trimmed cells of the first table line containing
// needle.
func cellsOnLine(t *testing.T, out, needle string) []string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, needle) {
			continue
		}
		var cells []string
		for _, c := range strings.FieldsFunc(line, func(r rune) bool { return r == '|' || r == '│' }) {
			cells = append(cells, strings.TrimSpace(c))
		}
		return cells
	}
	t.Fatalf("no line contains %q in:\n%s", needle, out)
	return nil
}

func TestSearch_RequiresArgs(t *testing.T) {
	_, err := run(t, []Option{WithBackend(&fakeBackend{})}, "search")
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	b := &fakeBackend{}
	out, err := run(t, []Option{WithBackend(b)}, "name", "ethyl", "alcohol")
	require.NoError(t, err)
	assert.Equal(t, "ethyl alcohol", b.nameQuery)
	assert.Contains(t, out, "64-17-5")
	assert.Contains(t, out, "乙醇")
}

func TestName_JSON(t *testing.T) {
	out, err := run(t, []Option{WithBackend(&fakeBackend{})}, "-o", "json", "name", "ethanol")
	require.NoError(t, err)

	var resp ghs.NameSearchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Results, 1)
}

func TestPictograms_SortedTable(t *testing.T) {
	out, err := run(t, []Option{WithBackend(&fakeBackend{})}, "pictograms")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("GHS02")), bytes.Index([]byte(out), []byte("GHS07")))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.csv")
	b := &fakeBackend{}

	out, err := run(t, []Option{WithBackend(b)}, "export", "--format", "csv", "--out", path, "64-17-5")
	require.NoError(t, err)
	assert.Equal(t, export.FormatCSV, b.exported)
	assert.Contains(t, out, "wrote 1 rows to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\ufeff")))
	assert.Contains(t, string(data), "64-17-5")
}

func TestExport_BadFormat(t *testing.T) {
	b := &fakeBackend{}
	_, err := run(t, []Option{WithBackend(b)}, "export", "--format", "pdf", "64-17-5")
	require.Error(t, err)
	assert.Nil(t, b.queries, "nothing is searched for an unsupported format")
}

func TestCacheFlush(t *testing.T) {
	db, mock := redismock.NewClientMock()
	remote := redis.NewRedisCache(redis.NewClientFromUniversal(db, nil, nil), nil, redis.WithPrefix("ghs:"))

	mock.ExpectScan(0, "ghs:cid:*", 100).SetVal([]string{"ghs:cid:64-17-5", "ghs:cid:ethanol"}, 0)
	mock.ExpectDel("ghs:cid:64-17-5", "ghs:cid:ethanol").SetVal(2)
	mock.ExpectScan(0, "ghs:document:*", 100).SetVal([]string{"ghs:document:702"}, 0)
	mock.ExpectDel("ghs:document:702").SetVal(1)

	out, err := run(t, []Option{WithRemoteCache(remote)}, "cache", "flush")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 3 keys")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheFlush_HelpDescribesScope(t *testing.T) {
	out, err := run(t, nil, "cache", "flush", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "shared Redis tier")
	assert.Contains(t, out, "process-local copies until those expire")
}

func TestCacheFlush_OneCache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	remote := redis.NewRedisCache(redis.NewClientFromUniversal(db, nil, nil), nil, redis.WithPrefix("ghs:"))

	mock.ExpectScan(0, "ghs:document:*", 100).SetVal(nil, 0)

	out, err := run(t, []Option{WithRemoteCache(remote)}, "cache", "flush", "document")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 0 keys")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheFlush_UnknownCache(t *testing.T) {
	_, err := run(t, nil, "cache", "flush", "molecules")
	assert.Error(t, err)
}

func TestCacheFlush_RedisDisabled(t *testing.T) {
	_, err := run(t, nil, "cache", "flush")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis is not enabled")
}

func TestFormatTable_AlignsWideCharacters(t *testing.T) {
	got := FormatTable([]string{"Code", "Icon", "Name"}, [][]string{
		{"GHS02", "🔥", "易燃物"},
		{"GHS1", "x", "Explosive"},
	})
	require.Contains(t, got, "易燃物")

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Greater(t, len(lines), 3)
	width := cond.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, cond.StringWidth(line), line)
	}
	assert.Empty(t, FormatTable(nil, nil))
}

func TestColorizeSignal(t *testing.T) {
	assert.Equal(t, "危險", colorizeSignal("Danger", "危險"))
	assert.Equal(t, "-", colorizeSignal("", "-"))
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}
