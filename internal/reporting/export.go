package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/spboyer/lattelab/internal/models"
)

// htmlRenderer needs the table extension for the benchmark table in
// markdown reports.
var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// Format selects an export representation.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat validates a --format flag value.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatJSON, FormatMarkdown, FormatHTML:
		return Format(raw), nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, md, or html)", raw)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// RenderHTML converts a markdown report to a standalone HTML document.
func RenderHTML(label string, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", label)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}

// Export writes one suite payload to w in the requested format. When
// compress is set the output is wrapped in a zstd stream.
func Export(w io.Writer, label string, payload models.SuitePayload, format Format, compress bool) error {
	if compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		if err := writeFormatted(zw, label, payload, format); err != nil {
			zw.Close() //nolint:errcheck
			return err
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("flushing zstd stream: %w", err)
		}
		return nil
	}
	return writeFormatted(w, label, payload, format)
}

func writeFormatted(w io.Writer, label string, payload models.SuitePayload, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
	case FormatMarkdown:
		if _, err := io.WriteString(w, MarkdownReport(label, payload)); err != nil {
			return fmt.Errorf("writing markdown: %w", err)
		}
	case FormatHTML:
		doc, err := RenderHTML(label, MarkdownReport(label, payload))
		if err != nil {
			return err
		}
		if _, err := w.Write(doc); err != nil {
			return fmt.Errorf("writing HTML: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
