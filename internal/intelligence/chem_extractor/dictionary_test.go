package chem_extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

func bundledIndex(t *testing.T) *Index {
	t.Helper()
	x, err := NewIndex(chemical.BundledTables())
	require.NoError(t, err)
	return x
}

func TestMergeIfAbsent(t *testing.T) {
	m := map[string]string{"ethanol": "64-17-5"}
	assert.False(t, mergeIfAbsent(m, "ethanol", "999-99-9"))
	assert.Equal(t, "64-17-5", m["ethanol"])
	assert.True(t, mergeIfAbsent(m, "alcohol", "64-17-5"))
	assert.Equal(t, "64-17-5", m["alcohol"])
}

func TestNewIndex_AliasNeverShadowsFormalName(t *testing.T) {
	x, err := NewIndex(chemical.Tables{
		Entries: []chemical.Entry{
			{CAS: "64-17-5", NameEN: "Ethanol", NameZH: "乙醇"},
			{CAS: "67-56-1", NameEN: "Methanol", NameZH: "甲醇"},
		},
		EnglishAliases: []chemical.Alias{{Name: "ETHANOL", CAS: "67-56-1"}, {Name: "spirit", CAS: "64-17-5"}},
		ChineseAliases: []chemical.Alias{{Name: "乙醇", CAS: "67-56-1"}},
	})
	require.NoError(t, err)

	r, ok := x.ResolveName("ethanol")
	require.True(t, ok)
	assert.Equal(t, Resolution{CAS: "64-17-5", Kind: chemical.MatchName}, r)

	r, ok = x.ResolveName("乙醇")
	require.True(t, ok)
	assert.Equal(t, "64-17-5", r.CAS)

	r, ok = x.ResolveName("Spirit")
	require.True(t, ok)
	assert.Equal(t, Resolution{CAS: "64-17-5", Kind: chemical.MatchAlias}, r)
}

func TestNewIndex_RejectsCorruptTables(t *testing.T) {
	_, err := NewIndex(chemical.Tables{Entries: []chemical.Entry{{CAS: "bad", NameEN: "x"}}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDictionaryCorrupt))
}

func TestIndex_RoundTrip(t *testing.T) {
	x := bundledIndex(t)
	english := map[string]int{}
	chinese := map[string]int{}
	for _, e := range chemical.BundledTables().Entries {
		english[foldKey(e.NameEN)]++
		chinese[foldKey(e.NameZH)]++
	}
	for _, e := range chemical.BundledTables().Entries {
		if english[foldKey(e.NameEN)] == 1 {
			got, ok := x.english[foldKey(e.NameEN)]
			require.True(t, ok, e.NameEN)
			assert.Equal(t, e.CAS, got.CAS, e.NameEN)
			assert.False(t, got.Alias)
		}
		if chinese[foldKey(e.NameZH)] == 1 {
			got, ok := x.chinese[foldKey(e.NameZH)]
			require.True(t, ok, e.NameZH)
			assert.Equal(t, e.CAS, got.CAS, e.NameZH)
		}
	}
}

func TestIndex_Names(t *testing.T) {
	x := bundledIndex(t)

	en, ok := x.EnglishName("64-17-5")
	require.True(t, ok)
	assert.Equal(t, "Ethanol", en)
	zh, ok := x.ChineseName("64-17-5")
	require.True(t, ok)
	assert.Equal(t, "乙醇", zh)

	_, ok = x.EnglishName("999-99-9")
	assert.False(t, ok)
	assert.Greater(t, x.Len(), 100)
}

func TestIndex_Translate(t *testing.T) {
	x := bundledIndex(t)

	zh, ok := x.Translate("  ETHANOL ")
	require.True(t, ok)
	assert.Equal(t, "乙醇", zh)

	zh, ok = x.Translate("Propan-2-ol")
	require.True(t, ok)
	assert.Equal(t, "異丙醇", zh)

	// Alphanumeric-only fallback ignores punctuation and spacing.
	zh, ok = x.Translate("N,N-Dimethyl formamide")
	require.True(t, ok)
	assert.Equal(t, "二甲基甲醯胺", zh)

	_, ok = x.Translate("unobtainium")
	assert.False(t, ok)
	_, ok = x.Translate("")
	assert.False(t, ok)
}

func TestResolveName(t *testing.T) {
	x := bundledIndex(t)
	tests := []struct {
		query string
		cas   string
		kind  chemical.MatchKind
	}{
		{"Ethanol", "64-17-5", chemical.MatchName},
		{" ETHANOL ", "64-17-5", chemical.MatchName},
		{"乙醇", "64-17-5", chemical.MatchName},
		{"Methanol", "67-56-1", chemical.MatchName},
		{"甲醇", "67-56-1", chemical.MatchName},
		{"Acetone", "67-64-1", chemical.MatchName},
		{"bleach", "7681-52-9", chemical.MatchAlias},
		{"漂白水", "7681-52-9", chemical.MatchAlias},
		{"Paracetamol", "103-90-2", chemical.MatchName},
	}
	for _, tt := range tests {
		r, ok := x.ResolveName(tt.query)
		require.True(t, ok, tt.query)
		assert.Equal(t, tt.cas, r.CAS, tt.query)
		assert.Equal(t, tt.kind, r.Kind, tt.query)
	}
}

func TestResolveName_Unresolved(t *testing.T) {
	x := bundledIndex(t)
	for _, q := range []string{"", "   ", "a", "Unobtainium", "不存在的化學物", "999-99-9"} {
		_, ok := x.ResolveName(q)
		assert.False(t, ok, "query %q", q)
	}
}

func TestResolveName_ShortestNameWins(t *testing.T) {
	x, err := NewIndex(chemical.Tables{Entries: []chemical.Entry{
		{CAS: "10-00-1", NameEN: "Sodium salt (Widget) extended form"},
		{CAS: "10-00-2", NameEN: "Salt (Widget)"},
		{CAS: "10-00-3", NameEN: "Brine (Widget)"},
	}})
	require.NoError(t, err)

	r, ok := x.ResolveName("widget")
	require.True(t, ok)
	assert.Equal(t, "10-00-2", r.CAS, "shortest name, then table order")

	_, ok = x.ResolveName("idge")
	assert.False(t, ok, "matches must sit on word boundaries")
}

func TestSearchNames(t *testing.T) {
	x := bundledIndex(t)

	results := x.SearchNames("ethanol", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "64-17-5", results[0].CAS, "exact match first")
	assert.Equal(t, "乙醇", results[0].NameZH)

	results = x.SearchNames("acid", 0)
	assert.LessOrEqual(t, len(results), DefaultNameSearchLimit)
	assert.NotEmpty(t, results)

	results = x.SearchNames("bleach", 5)
	require.Len(t, results, 1)
	assert.True(t, results[0].Alias)
	assert.Equal(t, "Sodium hypochlorite", results[0].NameEN)

	assert.Equal(t, []NameMatch{}, x.SearchNames("a", 0))
	assert.Empty(t, x.SearchNames("xyznotfound", 0))
}

func TestSearchNames_OrderAndDedup(t *testing.T) {
	x, err := NewIndex(chemical.Tables{
		Entries: []chemical.Entry{
			{CAS: "10-00-1", NameEN: "Zeta oxide", NameZH: ""},
			{CAS: "10-00-2", NameEN: "Alpha oxide", NameZH: ""},
			{CAS: "10-00-3", NameEN: "Oxide", NameZH: ""},
		},
		EnglishAliases: []chemical.Alias{{Name: "alpha oxide powder", CAS: "10-00-2"}},
	})
	require.NoError(t, err)

	results := x.SearchNames("oxide", 10)
	require.Len(t, results, 3)
	assert.Equal(t, "10-00-3", results[0].CAS)
	assert.Equal(t, "10-00-2", results[1].CAS)
	assert.False(t, results[1].Alias, "formal key sorts before the alias key")
	assert.Equal(t, "10-00-1", results[2].CAS)

	assert.Len(t, x.SearchNames("oxide", 2), 2)
}
