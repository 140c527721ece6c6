package chemical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

func TestBundledTables_Valid(t *testing.T) {
	require.NoError(t, BundledTables().Validate())
}

func TestBundledTables_CoreEntries(t *testing.T) {
	byCAS := map[string]Entry{}
	for _, e := range BundledTables().Entries {
		byCAS[e.CAS] = e
	}

	tests := []struct {
		cas, en, zh string
	}{
		{"64-17-5", "Ethanol", "乙醇"},
		{"67-56-1", "Methyl alcohol (Methanol)", "甲醇"},
		{"67-64-1", "Acetone", "丙酮"},
		{"7681-52-9", "Sodium hypochlorite", "次氯酸鈉"},
	}
	for _, tt := range tests {
		e, ok := byCAS[tt.cas]
		require.True(t, ok, tt.cas)
		assert.Equal(t, tt.en, e.NameEN)
		assert.Equal(t, tt.zh, e.NameZH)
	}
}

func TestBundledTables_AliasesAreNotFormalNames(t *testing.T) {
	tables := BundledTables()
	formal := map[string]struct{}{}
	for _, e := range tables.Entries {
		formal[e.NameEN] = struct{}{}
	}
	var bleach *Alias
	for i, a := range tables.EnglishAliases {
		if a.Name == "bleach" {
			bleach = &tables.EnglishAliases[i]
		}
	}
	require.NotNil(t, bleach)
	assert.Equal(t, "7681-52-9", bleach.CAS)
	assert.NotContains(t, formal, "bleach")
}

func TestTables_ValidateRejectsCorruption(t *testing.T) {
	tests := []struct {
		name   string
		tables Tables
	}{
		{"malformed cas", Tables{Entries: []Entry{{"64175", "Ethanol", "乙醇"}}}},
		{"duplicate cas", Tables{Entries: []Entry{{"64-17-5", "Ethanol", ""}, {"64-17-5", "Alcohol", ""}}}},
		{"nameless entry", Tables{Entries: []Entry{{"64-17-5", " ", ""}}}},
		{"dangling alias", Tables{
			Entries:        []Entry{{"64-17-5", "Ethanol", "乙醇"}},
			ChineseAliases: []Alias{{"酒精", "67-56-1"}},
		}},
		{"empty alias", Tables{
			Entries:        []Entry{{"64-17-5", "Ethanol", "乙醇"}},
			EnglishAliases: []Alias{{"", "64-17-5"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tables.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeDictionaryCorrupt))
		})
	}
}

func TestIdentity(t *testing.T) {
	assert.False(t, Identity{CAS: "64-17-5"}.HasCID())
	assert.True(t, Identity{CID: 702}.HasCID())
	assert.Equal(t, "CID-702", FallbackName(702))
	assert.True(t, CASPattern.MatchString("7732-18-5"))
	assert.False(t, CASPattern.MatchString("7732-18-55"))
}
