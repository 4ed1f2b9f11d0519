package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, Korean, English.Toggle())
	assert.Equal(t, English, Korean.Toggle())
	assert.Equal(t, "한국어", Korean.Display())
}

func TestLanguageJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Language Language `json:"language"`
	}{Korean})
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"Korean"}`, string(b))

	var out struct {
		Language Language `json:"language"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"language":"English"}`), &out))
	assert.Equal(t, English, out.Language)
	assert.Error(t, json.Unmarshal([]byte(`{"language":"Klingon"}`), &out))
}

func TestLabels(t *testing.T) {
	en, ko := New(English), New(Korean)
	assert.Equal(t, "📑 Table of Contents", en.Get(TableOfContent))
	assert.Equal(t, "📑 목차", ko.Get(TableOfContent))
	assert.Equal(t, "nope", en.Get(Key("nope")))

	assert.Contains(t, en.NetworkDetailUnavailable("vpc-1"), "vpc-1")
	assert.Contains(t, ko.NetworkDetailUnavailable("vpc-1"), "vpc-1")
	assert.Equal(t, "300s", en.Seconds(300))
	assert.Equal(t, "300초", ko.Seconds(300))
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for k, pair := range labels {
		assert.NotEmpty(t, pair[0], "english %s", k)
		assert.NotEmpty(t, pair[1], "korean %s", k)
	}
}
