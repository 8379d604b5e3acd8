package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/devtrackhq/jobgrid/internal/importer"
	"github.com/devtrackhq/jobgrid/internal/models"
)

// Service wraps the text-completion backend. The backend is an external
// collaborator: it returns prose which may or may not carry a tagged action;
// nothing here tries to force it into strictly validated structured output.
type Service struct {
	client llms.Model
	model  string
}

func NewService(ctx context.Context, apiKey, model string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant: GEMINI_API_KEY is empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("assistant: create client: %w", err)
	}
	return &Service{client: llm, model: model}, nil
}

const chatPromptTemplate = `You are a helpful job tracking assistant with the ability to add jobs to the tracker.

CURRENT JOBS DATA (%d total):
%s

JOB PORTALS DATA (%d total):
%s

CONVERSATION HISTORY:
%s

User: %s

IMPORTANT: You have the following powers (all require user approval):

1. ADD JOBS - Format:
[ACTION:ADD_JOBS]
` + "```json" + `
[{"company": "Name", "title": "Title", "location": "Location", "salary": "$X", "jobType": "Remote", "jobNature": "Full time", "status": "applied"}]
` + "```" + `
[/ACTION:ADD_JOBS]

2. UPDATE JOB - Format:
[ACTION:UPDATE_JOB]
` + "```json" + `
{"id": "job_id", "updates": {"status": "interview", "salary": "$150k"}}
` + "```" + `
[/ACTION:UPDATE_JOB]

3. DELETE JOBS - Format:
[ACTION:DELETE_JOBS]
` + "```json" + `
{"ids": ["job_id_1", "job_id_2"], "reason": "Rejected/Duplicate/etc"}
` + "```" + `
[/ACTION:DELETE_JOBS]

4. BULK UPDATE - Format:
[ACTION:BULK_UPDATE]
` + "```json" + `
{"filter": {"company": "Google"}, "updates": {"status": "rejected"}}
` + "```" + `
[/ACTION:BULK_UPDATE]

Always explain what you're doing and why. The user will approve/reject each action.

You can help with:
- Adding jobs directly to the tracker (with user approval)
- Analyzing job application patterns
- Suggesting which companies to follow up with
- Identifying gaps in applications
- Providing statistics about applications
- Suggesting next steps

Respond in a helpful, conversational way.`

// Chat sends one user message with full data context, records both sides in
// the session, and stages any action the reply carries.
func (s *Service) Chat(ctx context.Context, session *Session, userMessage string, jobs []models.JobApplication, portals []models.JobPortal) (string, *Action, error) {
	prompt := fmt.Sprintf(chatPromptTemplate,
		len(jobs), mustJSON(jobs),
		len(portals), mustJSON(portals),
		formatHistory(session.History()),
		userMessage,
	)

	reply, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("assistant: chat: %w", err)
	}

	session.AddUser(userMessage)
	session.AddAssistant(reply)

	action := ExtractAction(reply)
	if action != nil {
		session.Propose(action)
	}
	return reply, action, nil
}

const generatePromptTemplate = `%s

Please respond with ONLY a valid JSON array of job objects. Each job should have these fields:
- company (string)
- title (string)
- location (string)
- salary (string, optional)
- jobType (string: "Remote", "Hybrid", or "Onsite")
- jobNature (string: "Full time", "Part time", "Contract", etc.)
- status (string: "applied")

Return ONLY the JSON array, no additional text or markdown formatting.`

// GenerateJobs asks the backend for a batch of job entries from a free-form
// prompt. This is the strict-JSON import mode: a malformed reply is rejected
// with ErrInvalidFormat rather than fed to the tolerant parser.
func (s *Service) GenerateJobs(ctx context.Context, prompt string) ([]models.JobApplication, error) {
	full := fmt.Sprintf(generatePromptTemplate, prompt)
	reply, err := llms.GenerateFromSinglePrompt(ctx, s.client, full)
	if err != nil {
		return nil, fmt.Errorf("assistant: generate: %w", err)
	}
	return importer.ParseStrictJSON(reply)
}

const generateWithContextTemplate = `You are a job tracking assistant. Here is the user's current data:

EXISTING JOBS (%d total):
%s

EXISTING JOB PORTALS (%d total):
%s

User's request: %s

Based on the user's existing data and request, generate appropriate job entries in JSON format.
- Avoid duplicating companies already in the list unless specifically requested
- Match the style and format of existing entries
- Consider the user's job search patterns

Return ONLY a valid JSON array of job objects with fields company, title, location, salary, jobType, jobNature, status.`

// GenerateJobsWithContext is GenerateJobs primed with the user's existing
// collections, so suggestions avoid duplicates and match the data's style.
// Only the first ten jobs are inlined to keep the prompt bounded.
func (s *Service) GenerateJobsWithContext(ctx context.Context, prompt string, jobs []models.JobApplication, portals []models.JobPortal) ([]models.JobApplication, error) {
	sample := jobs
	if len(sample) > 10 {
		sample = sample[:10]
	}
	full := fmt.Sprintf(generateWithContextTemplate,
		len(jobs), mustJSON(sample),
		len(portals), mustJSON(portals),
		prompt,
	)
	reply, err := llms.GenerateFromSinglePrompt(ctx, s.client, full)
	if err != nil {
		return nil, fmt.Errorf("assistant: generate: %w", err)
	}
	return importer.ParseStrictJSON(reply)
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func formatHistory(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
