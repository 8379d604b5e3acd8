// Package assistant layers a tagged-action convention on top of free-text
// model responses: a reply may carry at most one structured mutation, which
// is staged until the user explicitly approves it.
package assistant

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/devtrackhq/jobgrid/internal/models"
)

type ActionType string

const (
	ActionAddJobs    ActionType = "add_jobs"
	ActionUpdateJob  ActionType = "update_job"
	ActionDeleteJobs ActionType = "delete_jobs"
	ActionBulkUpdate ActionType = "bulk_update"
)

type UpdatePayload struct {
	ID      string            `json:"id"`
	Updates map[string]string `json:"updates"`
}

type DeletePayload struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}

type BulkPayload struct {
	Filter  map[string]string `json:"filter"`
	Updates map[string]string `json:"updates"`
}

// Action is one staged mutation. Exactly one payload field is set,
// matching Type.
type Action struct {
	Type    ActionType
	AddJobs []models.JobApplication
	Update  *UpdatePayload
	Delete  *DeletePayload
	Bulk    *BulkPayload
}

// tagSpecs is the allow-list of action tags, in priority order. The first
// tag found in a response wins; anything else in the same response is
// ignored.
var tagSpecs = []struct {
	typ ActionType
	tag string
}{
	{ActionAddJobs, "ADD_JOBS"},
	{ActionUpdateJob, "UPDATE_JOB"},
	{ActionDeleteJobs, "DELETE_JOBS"},
	{ActionBulkUpdate, "BULK_UPDATE"},
}

var (
	tagPatterns = func() map[ActionType]*regexp.Regexp {
		m := make(map[ActionType]*regexp.Regexp, len(tagSpecs))
		for _, spec := range tagSpecs {
			m[spec.typ] = regexp.MustCompile(
				`(?s)\[ACTION:` + spec.tag + `\](.*?)\[/ACTION:` + spec.tag + `\]`)
		}
		return m
	}()
	fencedJSONRe = regexp.MustCompile("(?s)```json\n?(.*?)```")
)

// ExtractAction scans a response for an action tag wrapping a fenced JSON
// payload. Malformed payloads are logged and skipped rather than failing the
// response; the prose around them still reaches the user. Returns nil when
// no usable action is present.
func ExtractAction(text string) *Action {
	for _, spec := range tagSpecs {
		m := tagPatterns[spec.typ].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		jm := fencedJSONRe.FindStringSubmatch(m[1])
		if jm == nil {
			continue
		}
		action, err := parsePayload(spec.typ, []byte(jm[1]))
		if err != nil {
			log.Printf("assistant: dropping %s action, bad payload: %v", spec.typ, err)
			continue
		}
		return action
	}
	return nil
}

func parsePayload(typ ActionType, payload []byte) (*Action, error) {
	action := &Action{Type: typ}
	switch typ {
	case ActionAddJobs:
		if err := json.Unmarshal(payload, &action.AddJobs); err != nil {
			return nil, err
		}
	case ActionUpdateJob:
		action.Update = &UpdatePayload{}
		if err := json.Unmarshal(payload, action.Update); err != nil {
			return nil, err
		}
	case ActionDeleteJobs:
		action.Delete = &DeletePayload{}
		if err := json.Unmarshal(payload, action.Delete); err != nil {
			return nil, err
		}
	case ActionBulkUpdate:
		action.Bulk = &BulkPayload{}
		if err := json.Unmarshal(payload, action.Bulk); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown action type %q", typ)
	}
	return action, nil
}

// Apply executes an approved action against a job collection and returns the
// new collection. The input slice is never mutated.
func Apply(jobs []models.JobApplication, action *Action) []models.JobApplication {
	if action == nil {
		return jobs
	}
	switch action.Type {
	case ActionAddJobs:
		out := append([]models.JobApplication(nil), jobs...)
		for _, draft := range action.AddJobs {
			out = append(out, completeDraft(draft))
		}
		return out

	case ActionUpdateJob:
		out := append([]models.JobApplication(nil), jobs...)
		for i, job := range out {
			if job.ID != action.Update.ID {
				continue
			}
			out[i] = mergeUpdates(job, action.Update.Updates)
			break
		}
		return out

	case ActionDeleteJobs:
		doomed := make(map[string]bool, len(action.Delete.IDs))
		for _, id := range action.Delete.IDs {
			doomed[id] = true
		}
		out := make([]models.JobApplication, 0, len(jobs))
		for _, job := range jobs {
			if !doomed[job.ID] {
				out = append(out, job)
			}
		}
		return out

	case ActionBulkUpdate:
		out := append([]models.JobApplication(nil), jobs...)
		for i, job := range out {
			if matchesFilter(job, action.Bulk.Filter) {
				out[i] = mergeUpdates(job, action.Bulk.Updates)
			}
		}
		return out
	}
	return jobs
}

// Describe summarizes a staged action for the approval prompt.
func Describe(action *Action) string {
	switch action.Type {
	case ActionAddJobs:
		return fmt.Sprintf("add %d job(s)", len(action.AddJobs))
	case ActionUpdateJob:
		return fmt.Sprintf("update job %s (%d field(s))", action.Update.ID, len(action.Update.Updates))
	case ActionDeleteJobs:
		if action.Delete.Reason != "" {
			return fmt.Sprintf("delete %d job(s): %s", len(action.Delete.IDs), action.Delete.Reason)
		}
		return fmt.Sprintf("delete %d job(s)", len(action.Delete.IDs))
	case ActionBulkUpdate:
		return fmt.Sprintf("bulk-update jobs matching %v", action.Bulk.Filter)
	}
	return string(action.Type)
}

// completeDraft fills a partial assistant-proposed job with a fresh id,
// current timestamp and the default status.
func completeDraft(draft models.JobApplication) models.JobApplication {
	if draft.ID == "" {
		draft.ID = models.NewID()
	}
	if draft.Date == "" {
		draft.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if draft.Status == "" {
		draft.Status = models.StatusApplied
	}
	return draft
}

// mergeUpdates shallow-merges field updates into a record. Unknown field
// names are ignored.
func mergeUpdates(job models.JobApplication, updates map[string]string) models.JobApplication {
	for field, value := range updates {
		if merged, ok := job.WithField(field, value); ok {
			job = merged
		}
	}
	return job
}

// matchesFilter requires strict equality on every filter pair.
func matchesFilter(job models.JobApplication, filter map[string]string) bool {
	if len(filter) == 0 {
		return false
	}
	for field, want := range filter {
		got, ok := job.Field(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}
