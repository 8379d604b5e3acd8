// Package docimport fetches the plain-text or CSV export of a publicly
// shared Google document or spreadsheet for the import pipeline.
package docimport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

type Kind int

const (
	KindDocument Kind = iota
	KindSpreadsheet
)

var (
	documentRe    = regexp.MustCompile(`/document/d/([a-zA-Z0-9-_]+)`)
	spreadsheetRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
)

// ExtractID pulls the document id out of a share URL. Both document and
// spreadsheet links are supported.
func ExtractID(rawURL string) (string, Kind, bool) {
	if m := documentRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], KindDocument, true
	}
	if m := spreadsheetRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], KindSpreadsheet, true
	}
	return "", 0, false
}

// ExportURL builds the public export endpoint: CSV for spreadsheets, plain
// text for documents.
func ExportURL(id string, kind Kind) string {
	if kind == KindSpreadsheet {
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", id)
	}
	return fmt.Sprintf("https://docs.google.com/document/d/%s/export?format=txt", id)
}

// Fetch downloads the export of the document behind a share URL. The result
// is raw text for the import normalizer.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	id, kind, ok := ExtractID(rawURL)
	if !ok {
		return "", fmt.Errorf("not a recognizable document or spreadsheet URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ExportURL(id, kind), nil)
	if err != nil {
		return "", err
	}
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch document: HTTP %d, make sure it is publicly accessible", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(body), nil
}
