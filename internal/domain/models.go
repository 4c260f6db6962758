package domain

type SummarizeRequest struct {
	Transcript   string `json:"transcript"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

type ShareRequest struct {
	Summary    string   `json:"summary"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
}

type ExportRequest struct {
	Summary string `json:"summary"`
	Title   string `json:"title,omitempty"`
}
