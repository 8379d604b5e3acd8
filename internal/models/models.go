package models

import (
	"time"

	"github.com/google/uuid"
)

// Job pipeline stages. The set is open: values outside this list are kept
// as-is instead of being rejected, so imported data survives round trips.
const (
	StatusApplied     = "applied"
	StatusScreening   = "screening"
	StatusInterview   = "interview"
	StatusOffer       = "offer"
	StatusRejected    = "rejected"
	StatusNoResponse  = "no response"
	StatusShortListed = "short listed"
)

type JobApplication struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Salary    string `json:"salary"`
	Status    string `gorm:"default:'applied'" json:"status"`
	Notes     string `gorm:"type:text" json:"notes"`
	Date      string `json:"date"`
	JobNature string `json:"jobNature"`
	JobType   string `json:"jobType"`
	JobLink   string `json:"jobLink"`
	Email     string `json:"email"`
	Comments  string `gorm:"type:text" json:"comments"`

	// Store-assigned identifier, bookkeeping only. Stripped before sync.
	RemoteID string `gorm:"-" json:"_id,omitempty"`
	// Insertion rank inside the collection, kept so a full re-fetch
	// preserves array order.
	Position int `gorm:"index" json:"-"`
}

type JobPortal struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`

	RemoteID string `gorm:"-" json:"_id,omitempty"`
	Position int    `gorm:"index" json:"-"`
}

// NewID returns a collision-resistant record id. The time-plus-random-suffix
// scheme this replaces could collide on rapid bulk creation.
func NewID() string {
	return uuid.NewString()
}

// NewJobApplication returns a blank record the way the "Add" action creates
// one: fresh id, empty fields, status applied, dated now.
func NewJobApplication() JobApplication {
	return JobApplication{
		ID:     NewID(),
		Status: StatusApplied,
		Date:   time.Now().UTC().Format(time.RFC3339),
	}
}

func NewJobPortal() JobPortal {
	return JobPortal{ID: NewID()}
}

// JobFieldNames lists the editable columns of the job tracker table, in
// display order.
var JobFieldNames = []string{
	"date", "company", "title", "jobNature", "jobType", "location",
	"jobLink", "status", "email", "comments", "salary", "notes",
}

var PortalFieldNames = []string{"name", "url", "category"}

// Field returns the named column of a job application. Lookup is an explicit
// switch rather than reflection so the set of addressable fields stays fixed.
func (j JobApplication) Field(name string) (string, bool) {
	switch name {
	case "title":
		return j.Title, true
	case "company":
		return j.Company, true
	case "location":
		return j.Location, true
	case "salary":
		return j.Salary, true
	case "status":
		return j.Status, true
	case "notes":
		return j.Notes, true
	case "date":
		return j.Date, true
	case "jobNature":
		return j.JobNature, true
	case "jobType":
		return j.JobType, true
	case "jobLink":
		return j.JobLink, true
	case "email":
		return j.Email, true
	case "comments":
		return j.Comments, true
	}
	return "", false
}

// WithField returns a copy with the named column replaced. Unknown names
// leave the record untouched and report false.
func (j JobApplication) WithField(name, value string) (JobApplication, bool) {
	switch name {
	case "title":
		j.Title = value
	case "company":
		j.Company = value
	case "location":
		j.Location = value
	case "salary":
		j.Salary = value
	case "status":
		j.Status = value
	case "notes":
		j.Notes = value
	case "date":
		j.Date = value
	case "jobNature":
		j.JobNature = value
	case "jobType":
		j.JobType = value
	case "jobLink":
		j.JobLink = value
	case "email":
		j.Email = value
	case "comments":
		j.Comments = value
	default:
		return j, false
	}
	return j, true
}

func (p JobPortal) Field(name string) (string, bool) {
	switch name {
	case "name":
		return p.Name, true
	case "url":
		return p.URL, true
	case "category":
		return p.Category, true
	}
	return "", false
}

func (p JobPortal) WithField(name, value string) (JobPortal, bool) {
	switch name {
	case "name":
		p.Name = value
	case "url":
		p.URL = value
	case "category":
		p.Category = value
	default:
		return p, false
	}
	return p, true
}

// EditorKind tells a renderer which affordance a cell gets.
type EditorKind int

const (
	EditorText EditorKind = iota
	EditorSelect
	EditorDate
)

type Editor struct {
	Kind    EditorKind
	Options []string
}

var (
	StatusOptions = []string{
		StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected,
	}
	JobNatureOptions = []string{"Full time", "Part time", "Contract", "Internship", "Freelance"}
	JobTypeOptions   = []string{"Onsite", "Remote", "Hybrid"}
	EmailOptions     = []string{"Not Yet", "Sent", "No Response", "Responded"}
)

// JobEditorFor returns the editing affordance for a job column: closed
// dropdowns for the enumerated fields, a date picker for the date column,
// free text for everything else.
func JobEditorFor(field string) Editor {
	switch field {
	case "status":
		return Editor{Kind: EditorSelect, Options: StatusOptions}
	case "jobNature":
		return Editor{Kind: EditorSelect, Options: JobNatureOptions}
	case "jobType":
		return Editor{Kind: EditorSelect, Options: JobTypeOptions}
	case "email":
		return Editor{Kind: EditorSelect, Options: EmailOptions}
	case "date":
		return Editor{Kind: EditorDate}
	}
	return Editor{Kind: EditorText}
}
