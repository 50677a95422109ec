package resume

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat возвращается для файлов, которые не PDF и не текст.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and txt are allowed")

// ErrUnreadableDocument оборачивает ошибки разбора повреждённого PDF.
var ErrUnreadableDocument = errors.New("unreadable document")

// Format — формат загруженного резюме.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// DetectFormat определяет формат по расширению файла; MIME-тип учитывается,
// только если расширения нет.
func DetectFormat(filename, mimeType string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".txt":
		return FormatText, nil
	case "":
	default:
		return "", ErrUnsupportedFormat
	}
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "", ErrUnsupportedFormat
	}
	switch mt {
	case "application/pdf":
		return FormatPDF, nil
	case "text/plain":
		return FormatText, nil
	}
	return "", ErrUnsupportedFormat
}

// ExtractText возвращает исходный (не очищенный) текст резюме.
func ExtractText(filename, mimeType string, data []byte) (string, error) {
	format, err := DetectFormat(filename, mimeType)
	if err != nil {
		return "", err
	}
	if format == FormatPDF {
		return extractTextFromPDF(data)
	}
	return decodeText(data), nil
}

// decodeText декодирует UTF-8, отбрасывая некорректные последовательности байт.
func decodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// extractTextFromPDF склеивает текст страниц по порядку, без разделителя.
func extractTextFromPDF(data []byte) (text string, err error) {
	// на части битых документов pdf-ридер паникует
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: read pdf: %v", ErrUnreadableDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %w", ErrUnreadableDocument, err)
	}
	var buf strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		// nil: шрифты берутся со страницы, имена вида "F1" между страницами не уникальны
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: read pdf page %d: %w", ErrUnreadableDocument, i, err)
		}
		buf.WriteString(pageText)
	}
	return buf.String(), nil
}
