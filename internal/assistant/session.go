package assistant

import "github.com/devtrackhq/jobgrid/internal/models"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is one conversation transcript plus at most one staged action.
// Mutations proposed by the assistant are never applied from here without an
// explicit Approve call.
type Session struct {
	messages []Message
	pending  *Action
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) History() []Message {
	return append([]Message(nil), s.messages...)
}

func (s *Session) AddUser(content string) {
	s.messages = append(s.messages, Message{Role: RoleUser, Content: content})
}

func (s *Session) AddAssistant(content string) {
	s.messages = append(s.messages, Message{Role: RoleAssistant, Content: content})
}

// Propose stages an action pending approval. A new proposal supersedes any
// unresolved prior one.
func (s *Session) Propose(action *Action) {
	s.pending = action
}

// Pending returns the currently staged action, if any.
func (s *Session) Pending() *Action {
	return s.pending
}

// Approve applies the staged action to the collection and returns the new
// collection. The confirmation lands in the transcript. With nothing staged
// the collection comes back unchanged.
func (s *Session) Approve(jobs []models.JobApplication) []models.JobApplication {
	if s.pending == nil {
		return jobs
	}
	out := Apply(jobs, s.pending)
	s.AddAssistant("Action applied: " + Describe(s.pending))
	s.pending = nil
	return out
}

// Reject discards the staged action; the collection is untouched.
func (s *Session) Reject() {
	if s.pending == nil {
		return
	}
	s.AddAssistant("Action rejected: " + Describe(s.pending))
	s.pending = nil
}
