package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtrackhq/jobgrid/internal/models"
)

func tagged(tag, payload string) string {
	return "Sure, here you go.\n[ACTION:" + tag + "]\n```json\n" + payload + "\n```\n[/ACTION:" + tag + "]"
}

func sampleJobs() []models.JobApplication {
	return []models.JobApplication{
		{ID: "a", Company: "Acme", Title: "Engineer", Status: "applied"},
		{ID: "b", Company: "Globex", Title: "Analyst", Status: "applied"},
		{ID: "c", Company: "Initech", Title: "Manager", Status: "interview"},
	}
}

func TestExtractAddJobs(t *testing.T) {
	action := ExtractAction(tagged("ADD_JOBS", `[{"company": "Acme", "title": "Engineer"}]`))
	require.NotNil(t, action)
	assert.Equal(t, ActionAddJobs, action.Type)
	require.Len(t, action.AddJobs, 1)
	assert.Equal(t, "Acme", action.AddJobs[0].Company)
}

func TestExtractUpdateJob(t *testing.T) {
	action := ExtractAction(tagged("UPDATE_JOB", `{"id": "a", "updates": {"status": "interview"}}`))
	require.NotNil(t, action)
	assert.Equal(t, ActionUpdateJob, action.Type)
	assert.Equal(t, "a", action.Update.ID)
	assert.Equal(t, "interview", action.Update.Updates["status"])
}

func TestExtractDeleteJobs(t *testing.T) {
	action := ExtractAction(tagged("DELETE_JOBS", `{"ids": ["a", "b"], "reason": "duplicates"}`))
	require.NotNil(t, action)
	assert.Equal(t, ActionDeleteJobs, action.Type)
	assert.Equal(t, []string{"a", "b"}, action.Delete.IDs)
	assert.Equal(t, "duplicates", action.Delete.Reason)
}

func TestExtractBulkUpdate(t *testing.T) {
	action := ExtractAction(tagged("BULK_UPDATE", `{"filter": {"status": "applied"}, "updates": {"status": "no_response"}}`))
	require.NotNil(t, action)
	assert.Equal(t, ActionBulkUpdate, action.Type)
	assert.Equal(t, "applied", action.Bulk.Filter["status"])
}

func TestExtractFirstTagWins(t *testing.T) {
	text := tagged("UPDATE_JOB", `{"id": "a", "updates": {}}`) + "\n" +
		tagged("ADD_JOBS", `[{"company": "Acme"}]`)
	action := ExtractAction(text)
	require.NotNil(t, action)
	// ADD_JOBS outranks UPDATE_JOB regardless of position in the text.
	assert.Equal(t, ActionAddJobs, action.Type)
}

func TestExtractNoAction(t *testing.T) {
	assert.Nil(t, ExtractAction("Just a friendly reply with no actions."))
}

func TestExtractMalformedPayloadSkipped(t *testing.T) {
	assert.Nil(t, ExtractAction(tagged("ADD_JOBS", `{not json`)))
}

func TestExtractTagWithoutFence(t *testing.T) {
	text := `[ACTION:ADD_JOBS][{"company": "Acme"}][/ACTION:ADD_JOBS]`
	assert.Nil(t, ExtractAction(text))
}

func TestApplyAddJobs(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionAddJobs, AddJobs: []models.JobApplication{
		{Company: "Hooli", Title: "SRE"},
	}}
	out := Apply(jobs, action)

	require.Len(t, out, 4)
	assert.Len(t, jobs, 3)
	added := out[3]
	assert.Equal(t, "Hooli", added.Company)
	assert.NotEmpty(t, added.ID)
	assert.NotEmpty(t, added.Date)
	assert.Equal(t, models.StatusApplied, added.Status)
}

func TestApplyUpdateJob(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionUpdateJob, Update: &UpdatePayload{
		ID:      "b",
		Updates: map[string]string{"status": "offer", "location": "Berlin"},
	}}
	out := Apply(jobs, action)

	assert.Equal(t, "offer", out[1].Status)
	assert.Equal(t, "Berlin", out[1].Location)
	assert.Equal(t, "applied", jobs[1].Status)
	assert.Equal(t, out[0], jobs[0])
}

func TestApplyUpdateUnknownIDIsNoOp(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionUpdateJob, Update: &UpdatePayload{
		ID: "nope", Updates: map[string]string{"status": "offer"},
	}}
	assert.Equal(t, jobs, Apply(jobs, action))
}

func TestApplyDeleteJobs(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionDeleteJobs, Delete: &DeletePayload{IDs: []string{"a", "c"}}}
	out := Apply(jobs, action)

	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
	assert.Len(t, jobs, 3)
}

func TestApplyBulkUpdate(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionBulkUpdate, Bulk: &BulkPayload{
		Filter:  map[string]string{"status": "applied"},
		Updates: map[string]string{"status": "no_response"},
	}}
	out := Apply(jobs, action)

	assert.Equal(t, "no_response", out[0].Status)
	assert.Equal(t, "no_response", out[1].Status)
	// The interview row does not match the filter and is untouched.
	assert.Equal(t, jobs[2], out[2])
}

func TestApplyBulkEmptyFilterMatchesNothing(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionBulkUpdate, Bulk: &BulkPayload{
		Filter:  map[string]string{},
		Updates: map[string]string{"status": "rejected"},
	}}
	assert.Equal(t, jobs, Apply(jobs, action))
}

func TestApplyBulkFilterRequiresAllPairs(t *testing.T) {
	jobs := sampleJobs()
	action := &Action{Type: ActionBulkUpdate, Bulk: &BulkPayload{
		Filter:  map[string]string{"status": "applied", "company": "Acme"},
		Updates: map[string]string{"status": "rejected"},
	}}
	out := Apply(jobs, action)

	assert.Equal(t, "rejected", out[0].Status)
	assert.Equal(t, "applied", out[1].Status)
}

func TestApplyNilAction(t *testing.T) {
	jobs := sampleJobs()
	assert.Equal(t, jobs, Apply(jobs, nil))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "add 2 job(s)", Describe(&Action{
		Type: ActionAddJobs, AddJobs: make([]models.JobApplication, 2),
	}))
	assert.Equal(t, "delete 1 job(s): stale", Describe(&Action{
		Type: ActionDeleteJobs, Delete: &DeletePayload{IDs: []string{"a"}, Reason: "stale"},
	}))
}
