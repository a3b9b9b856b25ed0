package goquery_test

import (
	"testing"

	"github.com/fwojciec/readable"
	goquery "github.com/fwojciec/readable/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := goquery.NewMetaExtractor()
	_, err := ext.ExtractMetadata("")

	require.Error(t, err)
	assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
}

func TestMetaExtractor_PrefersOpenGraphTitle(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<title>Article Title - Example Site</title>
<meta property="og:title" content="Article Title">
</head><body></body></html>`

	ext := goquery.NewMetaExtractor()
	meta, err := ext.ExtractMetadata(html)

	require.NoError(t, err)
	assert.Equal(t, "Article Title", meta.Title)
}

func TestMetaExtractor_TitleFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "twitter title",
			html: `<html><head><meta name="twitter:title" content="Tweet Title"></head><body></body></html>`,
			want: "Tweet Title",
		},
		{
			name: "title element",
			html: `<html><head><title> Page Title </title></head><body></body></html>`,
			want: "Page Title",
		},
		{
			name: "first h1",
			html: `<html><head></head><body><h1>Heading Title</h1></body></html>`,
			want: "Heading Title",
		},
		{
			name: "nothing found",
			html: `<html><head></head><body><p>text</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext := goquery.NewMetaExtractor()
			meta, err := ext.ExtractMetadata(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.Title)
		})
	}
}

func TestMetaExtractor_DescriptionAndCanonical(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta name="description" content="A plain description.">
<link rel="canonical" href="https://example.com/article">
</head><body></body></html>`

	ext := goquery.NewMetaExtractor()
	meta, err := ext.ExtractMetadata(html)

	require.NoError(t, err)
	assert.Equal(t, "A plain description.", meta.Description)
	assert.Equal(t, "https://example.com/article", meta.CanonicalURL)
}

func TestMetaExtractor_OpenGraphURLFallback(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:url" content="https://example.com/og-article">
</head><body></body></html>`

	ext := goquery.NewMetaExtractor()
	meta, err := ext.ExtractMetadata(html)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/og-article", meta.CanonicalURL)
}
