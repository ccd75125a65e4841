package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"

	pdf "github.com/ledongthuc/pdf"
)

// ErrInvalidPDF is returned for bytes that do not parse as a PDF document.
var ErrInvalidPDF = errors.New("invalid pdf")

// PageCount parses data and returns the number of pages.
func PageCount(data []byte) (pages int, err error) {
	// the parser panics on some truncated inputs
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	n := doc.NumPage()
	if n < 1 {
		return 0, fmt.Errorf("%w: document has no pages", ErrInvalidPDF)
	}
	return n, nil
}
