package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// docxBytes builds a minimal docx archive holding the given paragraphs.
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body>`))
	require.NoError(t, err)
	for _, p := range paragraphs {
		_, err = w.Write([]byte(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`))
		require.NoError(t, err)
	}
	_, err = w.Write([]byte(`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseTextDocx(t *testing.T) {
	data := docxBytes(t, "Senior Go Developer", "5 years of experience")
	text, err := ParseText("resume.docx", data)
	require.NoError(t, err)
	require.Contains(t, text, "Senior Go Developer")
	require.Contains(t, text, "5 years of experience")
}

func TestParseTextUnsupportedFormat(t *testing.T) {
	_, err := ParseText("resume.txt", []byte("hello"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseText("resume", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseTextCorruptDocx(t *testing.T) {
	_, err := ParseText("resume.docx", []byte("not a zip archive"))
	require.Error(t, err)
}

func TestParseTextCorruptPDF(t *testing.T) {
	_, err := ParseText("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)
}
