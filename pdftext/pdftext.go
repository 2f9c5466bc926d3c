/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pdftext reads the text layer of PDF documents.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/humaidq/medreport/logging"
)

var logger = logging.Logger(logging.SourceExtractor)

// Extractor implements analysis.TextExtractor for PDF documents.
type Extractor struct{}

// ExtractText returns the text of data, or "" when nothing is recoverable.
func (Extractor) ExtractText(data []byte) string {
	text, err := Extract(data)
	if err != nil {
		logger.Warn("Failed to extract text from PDF", "error", err, "size", len(data))
		return ""
	}

	return text
}

// Extract returns the text of every page in order. Pages are joined by a
// newline and text fragments within a page by a single space, in the order
// they appear in the content stream. The error is non-nil only when the
// document could not be opened or yielded no text at all.
func Extract(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		fragments, err := pageFragments(reader.Page(i))
		if err != nil {
			logger.Debug("Skipping unreadable page", "page", i, "error", err)
		}

		sb.WriteString(strings.Join(fragments, " "))
		sb.WriteString("\n")
	}

	text = sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	return text, nil
}

// pageFragments collects the strings shown by text operators on one page.
func pageFragments(page pdf.Page) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	if page.V.IsNull() {
		return nil, ErrMissingPage
	}

	fonts := make(map[string]pdf.Font)
	for _, name := range page.Fonts() {
		fonts[name] = page.Font(name)
	}

	var enc pdf.TextEncoding

	decode := func(v pdf.Value) string {
		raw := v.RawString()
		if enc == nil {
			return raw
		}
		return enc.Decode(raw)
	}

	show := func(args []pdf.Value) {
		if len(args) == 0 {
			return
		}

		arg := args[len(args)-1]
		switch arg.Kind() {
		case pdf.String:
			if s := decode(arg); s != "" {
				fragments = append(fragments, s)
			}
		case pdf.Array:
			var sb strings.Builder
			for i := 0; i < arg.Len(); i++ {
				if item := arg.Index(i); item.Kind() == pdf.String {
					sb.WriteString(decode(item))
				}
			}
			if sb.Len() > 0 {
				fragments = append(fragments, sb.String())
			}
		}
	}

	interpret := func(strm pdf.Value) {
		pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
			n := stk.Len()
			args := make([]pdf.Value, n)
			for i := n - 1; i >= 0; i-- {
				args[i] = stk.Pop()
			}

			switch op {
			case "Tf":
				if len(args) != 2 {
					return
				}
				if f, ok := fonts[args[0].Name()]; ok {
					enc = f.Encoder()
				} else {
					enc = nil
				}
			case "Tj", "'", "\"", "TJ":
				show(args)
			}
		})
	}

	contents := page.V.Key("Contents")
	if contents.Kind() == pdf.Array {
		for i := 0; i < contents.Len(); i++ {
			interpret(contents.Index(i))
		}
	} else {
		interpret(contents)
	}

	return fragments, nil
}
