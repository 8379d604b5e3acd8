package models

// DemoJobs is the sample dataset shown when the remote store is unreachable
// or empty, so a first load never presents a blank table.
func DemoJobs() []JobApplication {
	return []JobApplication{
		{
			ID:        "1",
			Title:     "Frontend Developer",
			Company:   "TechCorp",
			Location:  "San Francisco, CA",
			Salary:    "$100k - $130k",
			Status:    StatusInterview,
			Notes:     "Second round interview scheduled for next week",
			Date:      "2024-01-15T00:00:00Z",
			JobNature: "Full time",
			JobType:   "Remote",
			JobLink:   "https://example.com/job1",
			Email:     "Sent",
			Comments:  "Great company culture, flexible hours",
		},
		{
			ID:        "2",
			Title:     "Senior React Developer",
			Company:   "StartupXYZ",
			Location:  "New York, NY",
			Salary:    "$120k - $150k",
			Status:    StatusApplied,
			Notes:     "Applied through LinkedIn",
			Date:      "2024-01-20T00:00:00Z",
			JobNature: "Full time",
			JobType:   "Hybrid",
			JobLink:   "https://example.com/job2",
			Email:     "Not Yet",
			Comments:  "Exciting startup with good funding",
		},
		{
			ID:        "3",
			Title:     "Full Stack Engineer",
			Company:   "BigTech Inc",
			Location:  "Seattle, WA",
			Salary:    "$140k - $180k",
			Status:    StatusScreening,
			Notes:     "Phone screening completed, waiting for feedback",
			Date:      "2024-01-10T00:00:00Z",
			JobNature: "Full time",
			JobType:   "Onsite",
			JobLink:   "https://example.com/job3",
			Email:     "Responded",
			Comments:  "Large team, lots of growth opportunities",
		},
	}
}

// DefaultPortals seeds the portals tab until the remote store has data.
func DefaultPortals() []JobPortal {
	return []JobPortal{
		{ID: "1", Name: "LinkedIn", URL: "https://www.linkedin.com/jobs", Category: "General"},
		{ID: "2", Name: "Indeed", URL: "https://www.indeed.com", Category: "General"},
		{ID: "3", Name: "Glassdoor", URL: "https://www.glassdoor.com", Category: "General"},
	}
}
