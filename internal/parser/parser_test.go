package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainPassthrough(t *testing.T) {
	text, err := ExtractText([]byte("  Jane Doe\nSoftware Engineer\n"), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", text)
}

func TestExtractTextMimeParametersIgnored(t *testing.T) {
	text, err := ExtractText([]byte("hello"), "text/plain; charset=utf-8")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("binary"), "image/png")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not really a pdf"), "application/pdf")
	assert.Error(t, err)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText([]byte("not really a docx"), MimeDocx)
	assert.Error(t, err)
}

func TestExtractTextLegacyDocAccepted(t *testing.T) {
	// msword is routed to the word extractor, not rejected by type. The
	// garbage payload fails parsing, not the MIME check.
	_, err := ExtractText([]byte("plain old doc"), MimeDoc)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
}
