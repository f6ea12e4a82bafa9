package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, ParseLines("A\n\nB\n C "))
	assert.Equal(t, []string{"one", "two"}, ParseLines("one\r\ntwo\r\n"))
	assert.Empty(t, ParseLines("   \n\n"))
}

func TestLineList_Unmarshal(t *testing.T) {
	t.Run("newline string", func(t *testing.T) {
		var l LineList
		require.NoError(t, json.Unmarshal([]byte(`"A\n\nB\n C "`), &l))
		assert.Equal(t, LineList{"A", "B", "C"}, l)
	})

	t.Run("array kept as given", func(t *testing.T) {
		var l LineList
		require.NoError(t, json.Unmarshal([]byte(`[" A ", "", "B"]`), &l))
		assert.Equal(t, LineList{" A ", "", "B"}, l)
	})

	t.Run("null becomes empty", func(t *testing.T) {
		var l LineList
		require.NoError(t, json.Unmarshal([]byte(`null`), &l))
		assert.NotNil(t, l)
		assert.Len(t, l, 0)
	})

	t.Run("object rejected", func(t *testing.T) {
		var l LineList
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
	})
}

func TestLineList_MarshalNil(t *testing.T) {
	var l LineList
	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "growth-plan-pro", GenerateSlug("Growth Plan (Pro)"))
	assert.Equal(t, "starter", GenerateSlug("  Starter  "))
	assert.Equal(t, "a-b", GenerateSlug("a__b"))
	assert.Equal(t, "", GenerateSlug("!!!"))
}

func TestSanitizeFolder(t *testing.T) {
	cases := map[string]string{
		"":                    "uploads",
		"Portfolio":           "portfolio",
		"../../etc/passwd":    "etc/passwd",
		"/logos//2024/":       "logos/2024",
		"team photos/héros!":  "teamphotos/hros",
		"..":                  "uploads",
		"a\\..\\b":            "a/b",
		"services/ai_auto-1":  "services/ai_auto-1",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFolder(in), "input %q", in)
	}
}
