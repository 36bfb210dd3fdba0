package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocument_SameAs(t *testing.T) {
	law := DocumentType{Code: "Law"}
	hint := DocumentType{Code: "Hint"}

	tests := []struct {
		name     string
		a, b     Document
		expected bool
	}{
		{
			name:     "same index, type and official number",
			a:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1"}},
			b:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1"}},
			expected: true,
		},
		{
			name:     "official number shared in one of several languages",
			a:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1", "fr": "B1"}},
			b:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"fr": "B1"}},
			expected: true,
		},
		{
			name:     "different official number",
			a:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1"}},
			b:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A2"}},
			expected: false,
		},
		{
			name:     "official numbers in disjoint languages",
			a:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1"}},
			b:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"fr": "A1"}},
			expected: false,
		},
		{
			name:     "no official number on one side matches on index and type",
			a:        Document{Index: 1, DocumentType: law, OfficialNumber: MultilingualText{"de": "A1"}},
			b:        Document{Index: 1, DocumentType: law},
			expected: true,
		},
		{
			name:     "different index",
			a:        Document{Index: 1, DocumentType: law},
			b:        Document{Index: 2, DocumentType: law},
			expected: false,
		},
		{
			name:     "different type",
			a:        Document{Index: 1, DocumentType: law},
			b:        Document{Index: 1, DocumentType: hint},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.SameAs(&tt.b))
		})
	}
}

func TestDocument_IsPublished(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(-1, 0, 0)
	future := now.AddDate(1, 0, 0)

	assert.True(t, (&Document{PublishedFrom: past}).IsPublished(now))
	assert.True(t, (&Document{PublishedFrom: now}).IsPublished(now))
	assert.False(t, (&Document{PublishedFrom: future}).IsPublished(now))
	assert.True(t, (&Document{PublishedFrom: past, PublishedUntil: &future}).IsPublished(now))
	assert.False(t, (&Document{PublishedFrom: past, PublishedUntil: &now}).IsPublished(now))
}

func TestMultilingualText_Get(t *testing.T) {
	text := MultilingualText{"de": "Wald", "fr": "Forêt", "it": ""}

	assert.Equal(t, "Forêt", text.Get("fr", "de"))
	assert.Equal(t, "Wald", text.Get("it", "de"))
	assert.Equal(t, "Wald", text.Get("rm", "en"))
	assert.Equal(t, "", MultilingualText(nil).Get("de", "fr"))
}

func TestMultilingualText_Scan(t *testing.T) {
	var text MultilingualText
	assert.NoError(t, text.Scan([]byte(`{"de":"Baulinie","fr":"Alignement"}`)))
	assert.Equal(t, "Alignement", text["fr"])

	assert.NoError(t, text.Scan(nil))
	assert.Nil(t, text)

	assert.Error(t, text.Scan(42))
	assert.Error(t, text.Scan("{not json"))
}
