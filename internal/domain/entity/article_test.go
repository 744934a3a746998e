package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Equal(t *testing.T) {
	a := fullArticle()
	b := fullArticle()
	assert.True(t, a.Equal(b))
	assert.True(t, cmp.Equal(a, b))

	b.Content = StringPtr("other")
	assert.False(t, a.Equal(b))

	b = fullArticle()
	b.Source.Name = nil
	assert.False(t, a.Equal(b))

	b = fullArticle()
	b.Author = StringPtr("")
	a.Author = nil
	assert.False(t, a.Equal(b), "absent and empty must differ")
}

func TestArticle_String(t *testing.T) {
	a := fullArticle()
	want := "Title: Title One\n" +
		"Description: Description One\n" +
		"Published At: 2023-10-17T12:00:00Z\n" +
		"URL: http://example.com/article1\n"
	assert.Equal(t, want, a.String())

	a.Title = nil
	assert.Contains(t, a.String(), "Title: null\n")
}

func TestArticle_JSONDecode(t *testing.T) {
	raw := `{"source":{"id":null,"name":"Src"},"title":"T","description":"","url":"u","publishedAt":"p","extra":1}`

	var a Article
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Nil(t, a.Source.ID)
	assert.Equal(t, "Src", *a.Source.Name)
	assert.Nil(t, a.Author)
	require.NotNil(t, a.Description)
	assert.Equal(t, "", *a.Description)
	assert.True(t, a.IsValid())
}

func TestArticle_RequiredFieldsRoundTrip(t *testing.T) {
	original := fullArticle()

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Article
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, *original.Title, *decoded.Title)
	assert.Equal(t, *original.Description, *decoded.Description)
	assert.Equal(t, *original.PublishedAt, *decoded.PublishedAt)
	assert.Equal(t, *original.URL, *decoded.URL)
}
