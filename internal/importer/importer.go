// Package importer turns heterogeneous pasted or fetched text (JSON, CSV,
// TSV, loosely labeled columns) into job application drafts.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/devtrackhq/jobgrid/internal/models"
)

var (
	// ErrNoRecords means the input parsed but yielded nothing with at least
	// a company or a title.
	ErrNoRecords = errors.New("no valid records found")
	// ErrInvalidFormat is the strict-JSON mode rejection.
	ErrInvalidFormat = errors.New("invalid format")
)

// jsonAliases maps alternate JSON key names onto canonical fields. Ordered,
// first match wins; canonical names come first so they always take priority
// over their aliases.
var jsonAliases = []struct {
	field   string
	aliases []string
}{
	{"id", []string{"id"}},
	{"date", []string{"date", "appliedDate", "applicationDate"}},
	{"title", []string{"title", "position", "role"}},
	{"company", []string{"company", "companyName", "employer"}},
	{"location", []string{"location", "city", "place"}},
	{"salary", []string{"salary", "compensation", "pay"}},
	{"status", []string{"status", "stage"}},
	{"jobNature", []string{"jobNature", "nature", "employment"}},
	{"jobType", []string{"jobType", "type", "workType"}},
	{"jobLink", []string{"jobLink", "link", "url"}},
	{"email", []string{"email"}},
	{"notes", []string{"notes", "description"}},
	{"comments", []string{"comments", "remarks"}},
}

// headerAliases matches first-line cells to canonical columns. Ordered: a
// header cell is claimed by the first column whose alias it equals or
// contains, and a column can claim at most one cell.
var headerAliases = []struct {
	field   string
	aliases []string
}{
	{"date", []string{"date", "applied date", "application date", "date applied"}},
	{"company", []string{"company name", "company", "employer", "organization"}},
	{"location", []string{"company location", "location", "city", "place", "where"}},
	{"title", []string{"job title", "title", "position", "role", "job position"}},
	{"salary", []string{"salary", "compensation", "pay", "wage"}},
	{"status", []string{"job status", "status", "application status", "stage"}},
	{"jobNature", []string{"job nature", "nature", "employment type", "employment", "type of employment"}},
	{"jobType", []string{"job type", "work type", "remote", "work mode", "mode"}},
	{"jobLink", []string{"job link", "link", "url", "job url", "posting"}},
	{"email", []string{"email status", "email", "contact"}},
	{"comments", []string{"comments", "notes", "remarks", "description"}},
}

// positionalOrder is assumed when no header row is recognized.
var positionalOrder = []string{
	"date", "company", "title", "location", "salary", "status",
	"jobNature", "jobType", "jobLink", "email", "comments",
}

// Parse converts raw text into job application drafts. JSON is attempted
// first; a failure there is not an error, it is the expected branch for
// pasted spreadsheet data, which falls through to delimited parsing.
func Parse(text string) ([]models.JobApplication, error) {
	if drafts, ok := parseJSON(text); ok {
		if !anyQualifies(drafts) {
			return nil, ErrNoRecords
		}
		return drafts, nil
	}
	return parseDelimited(text)
}

// ParseStrictJSON is the strict import mode used for machine-generated
// payloads: code fences are tolerated but malformed JSON is rejected rather
// than handed to the delimited parser.
func ParseStrictJSON(text string) ([]models.JobApplication, error) {
	cleaned := stripCodeFences(text)
	var batch []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		var single map[string]any
		if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
			return nil, ErrInvalidFormat
		}
		batch = []map[string]any{single}
	}
	drafts := make([]models.JobApplication, 0, len(batch))
	for _, obj := range batch {
		drafts = append(drafts, draftFromObject(obj))
	}
	if len(drafts) == 0 {
		return nil, ErrNoRecords
	}
	return drafts, nil
}

// stripCodeFences removes markdown ``` wrappers that text-generation models
// like to add around JSON.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	}
	return strings.TrimSpace(cleaned)
}

func parseJSON(text string) ([]models.JobApplication, bool) {
	trimmed := strings.TrimSpace(text)
	var batch []map[string]any
	if err := json.Unmarshal([]byte(trimmed), &batch); err == nil {
		drafts := make([]models.JobApplication, 0, len(batch))
		for _, obj := range batch {
			drafts = append(drafts, draftFromObject(obj))
		}
		return drafts, true
	}
	var single map[string]any
	if err := json.Unmarshal([]byte(trimmed), &single); err == nil {
		return []models.JobApplication{draftFromObject(single)}, true
	}
	return nil, false
}

// draftFromObject maps a decoded JSON object onto a draft using the alias
// table, then fills defaults for id, date and status.
func draftFromObject(obj map[string]any) models.JobApplication {
	resolved := map[string]string{}
	for _, entry := range jsonAliases {
		for _, alias := range entry.aliases {
			if v, ok := lookupKey(obj, alias); ok && v != "" {
				resolved[entry.field] = v
				break
			}
		}
	}

	draft := models.JobApplication{
		ID:        resolved["id"],
		Title:     resolved["title"],
		Company:   resolved["company"],
		Location:  resolved["location"],
		Salary:    resolved["salary"],
		Status:    strings.ToLower(resolved["status"]),
		Notes:     resolved["notes"],
		JobNature: resolved["jobNature"],
		JobType:   resolved["jobType"],
		JobLink:   resolved["jobLink"],
		Email:     resolved["email"],
		Comments:  resolved["comments"],
		Date:      resolved["date"],
	}
	return completeDraft(draft)
}

// lookupKey fetches a key case-insensitively and stringifies scalar values.
func lookupKey(obj map[string]any, key string) (string, bool) {
	for k, v := range obj {
		if !strings.EqualFold(k, key) {
			continue
		}
		switch val := v.(type) {
		case string:
			return strings.TrimSpace(val), true
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), true
		case bool:
			return fmt.Sprintf("%t", val), true
		}
	}
	return "", false
}

func parseDelimited(text string) ([]models.JobApplication, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoRecords
	}

	mapping, hasHeader := detectHeader(splitFields(lines[0]))
	dataLines := lines
	if hasHeader {
		dataLines = lines[1:]
	} else {
		first := splitFields(lines[0])
		mapping = positionalMapping(first)
	}

	var drafts []models.JobApplication
	for _, line := range dataLines {
		parts := splitFields(line)
		draft := mapRow(parts, mapping)
		if draft.Company == "" && draft.Title == "" {
			continue
		}
		drafts = append(drafts, draft)
	}
	if len(drafts) == 0 {
		return nil, ErrNoRecords
	}
	return drafts, nil
}

// splitFields splits a line on comma, tab or pipe, ignoring delimiters inside
// paired double quotes, and strips surrounding quotes and whitespace from
// each field.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case (r == ',' || r == '\t' || r == '|') && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// detectHeader assigns first-line cells to canonical columns. Each cell goes
// to the first column whose aliases it equals or contains; a column never
// claims more than one cell. Any match at all marks the line as a header row.
func detectHeader(cells []string) (map[string]int, bool) {
	mapping := map[string]int{}
	hasHeader := false
	for idx, cell := range cells {
		lower := strings.ToLower(strings.TrimSpace(cell))
		for _, entry := range headerAliases {
			if _, taken := mapping[entry.field]; taken {
				continue
			}
			if matchesAlias(lower, entry.aliases) {
				mapping[entry.field] = idx
				hasHeader = true
				break
			}
		}
	}
	return mapping, hasHeader
}

func matchesAlias(cell string, aliases []string) bool {
	for _, alias := range aliases {
		if cell == alias || strings.Contains(cell, alias) {
			return true
		}
	}
	return false
}

// positionalMapping is the fallback when nothing on the first line matches a
// known header. Columns are assumed in the documented default order; when
// the first cell is clearly not a date the leading date column is treated as
// absent and the order starts at company instead.
func positionalMapping(firstRow []string) map[string]int {
	order := positionalOrder
	if len(firstRow) > 0 && firstRow[0] != "" && !looksLikeDate(firstRow[0]) {
		order = positionalOrder[1:]
	}
	mapping := make(map[string]int, len(order))
	for i, field := range order {
		mapping[field] = i
	}
	return mapping
}

func mapRow(parts []string, mapping map[string]int) models.JobApplication {
	at := func(field string) string {
		idx, ok := mapping[field]
		if !ok || idx < 0 || idx >= len(parts) {
			return ""
		}
		return parts[idx]
	}

	draft := models.JobApplication{
		Company:   at("company"),
		Title:     at("title"),
		Location:  at("location"),
		Salary:    at("salary"),
		Status:    strings.ToLower(at("status")),
		JobNature: at("jobNature"),
		JobType:   at("jobType"),
		JobLink:   at("jobLink"),
		Email:     at("email"),
		Comments:  at("comments"),
		Date:      at("date"),
	}
	return completeDraft(draft)
}

// completeDraft fills the defaulted fields: fresh id, normalized date
// (missing or unparseable dates degrade to now), status applied.
func completeDraft(draft models.JobApplication) models.JobApplication {
	if draft.ID == "" {
		draft.ID = models.NewID()
	}
	draft.Date = ParseDate(draft.Date)
	if draft.Status == "" {
		draft.Status = models.StatusApplied
	}
	return draft
}

func anyQualifies(drafts []models.JobApplication) bool {
	for _, d := range drafts {
		if d.Company != "" || d.Title != "" {
			return true
		}
	}
	return false
}
