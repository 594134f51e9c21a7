package transcript

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

var pdfWrap = apperrors.NewWrapper("transcript", "extract_pdf")

// ExtractPDFText returns the plain text of a PDF document given its
// raw bytes. Failures carry the user-facing upload error message.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", pdfWrap.Wrap(err, "Could not read PDF")
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", pdfWrap.Wrap(err, "Could not read PDF")
	}

	var sb bytes.Buffer
	if _, err := io.Copy(&sb, text); err != nil {
		return "", pdfWrap.Wrap(err, "Could not read PDF")
	}
	return sb.String(), nil
}
