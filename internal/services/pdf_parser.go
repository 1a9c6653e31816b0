package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text           string
	PageCount      int
	PagesProcessed int
}

type pdfParserService struct {
	maxPages      int
	minTextLength int
}

func NewPDFParserService(maxPages, minTextLength int) PDFParserService {
	return &pdfParserService{
		maxPages:      maxPages,
		minTextLength: minTextLength,
	}
}

func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (content *PDFContent, err error) {
	// The parser panics on some malformed cross reference tables.
	defer func() {
		if r := recover(); r != nil {
			reason := ReasonUnreadable
			if isEncrypted(data, nil) {
				reason = ReasonEncrypted
			}
			content = nil
			err = &ExtractionError{Reason: reason, Err: fmt.Errorf("pdf parser panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if isEncrypted(data, err) {
			return nil, &ExtractionError{Reason: ReasonEncrypted, Err: err}
		}
		return nil, &ExtractionError{Reason: ReasonUnreadable, Err: fmt.Errorf("failed to open PDF: %w", err)}
	}

	// Files with an empty user password open fine, but are still rejected.
	if !r.Trailer().Key("Encrypt").IsNull() {
		log.Println("⚠️  Encrypted PDF detected")
		return nil, &ExtractionError{Reason: ReasonEncrypted}
	}

	totalPage := r.NumPage()
	if totalPage == 0 {
		log.Println("⚠️  PDF has no pages")
		return nil, &ExtractionError{Reason: ReasonEmpty}
	}

	pageLimit := totalPage
	if pageLimit > p.maxPages {
		log.Printf("📄 PDF has %d pages, limiting to first %d\n", totalPage, p.maxPages)
		pageLimit = p.maxPages
	}

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= pageLimit; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if n := utf8.RuneCountInString(text); n < p.minTextLength {
		log.Printf("⚠️  Extracted text is too short: %d chars\n", n)
		return nil, &ExtractionError{
			Reason: ReasonTooShort,
			Err:    fmt.Errorf("extracted %d characters, need at least %d", n, p.minTextLength),
		}
	}

	return &PDFContent{
		Text:           text,
		PageCount:      totalPage,
		PagesProcessed: pageLimit,
	}, nil
}

func isEncrypted(data []byte, err error) bool {
	if errors.Is(err, pdf.ErrInvalidPassword) {
		return true
	}
	return bytes.Contains(data, []byte("/Encrypt"))
}
