package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx zips a document.xml body into a minimal OOXML package.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct{ name, content string }{
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const docxNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func TestText_DOCXJoinsParagraphsWithNewlines(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document `+docxNS+`><w:body>`+
		`<w:p><w:r><w:t>Priya Sharma</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>6 years of experience &amp; counting</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Text(data, FormatDOCX)

	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma\n6 years of experience & counting", text,
		"paragraphs join with newlines, entities are unescaped, output is trimmed")
}

func TestText_EmptyDOCX(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document `+docxNS+`><w:body></w:body></w:document>`)

	text, err := Text(data, FormatDOCX)

	require.NoError(t, err)
	assert.Equal(t, "", text, "a well-formed empty document is not an error")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"resume.pdf", FormatPDF, false},
		{"Resume.PDF", FormatPDF, false},
		{"resume.docx", FormatDOCX, false},
		{"/tmp/dir/resume.DOCX", FormatDOCX, false},
		{"resume.txt", "", true},
		{"resume", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				var extractErr *Error
				assert.ErrorAs(t, err, &extractErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := Text([]byte("data"), Format("rtf"))

	require.Error(t, err)
	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, Format("rtf"), extractErr.Format)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text([]byte("definitely not a pdf"), FormatPDF)

	require.Error(t, err)
	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, FormatPDF, extractErr.Format)
	assert.Error(t, errors.Unwrap(extractErr), "the underlying decode error is carried as the cause")
}

func TestText_CorruptDOCX(t *testing.T) {
	_, err := Text([]byte{0x00, 0x01, 0x02}, FormatDOCX)

	require.Error(t, err)
	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, FormatDOCX, extractErr.Format)
}

func TestError_Message(t *testing.T) {
	err := &Error{Format: FormatPDF, Message: "failed to read document", Cause: errors.New("truncated")}
	assert.Contains(t, err.Error(), "pdf")
	assert.Contains(t, err.Error(), "truncated")

	bare := &Error{Format: FormatDOCX, Message: "unsupported format"}
	assert.Contains(t, bare.Error(), "unsupported format")
	assert.Nil(t, errors.Unwrap(bare))
}
