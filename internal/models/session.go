package models

import "strings"

// SessionState is the conversation progress tag.
type SessionState string

const (
	StateAwaitingLanguage        SessionState = "awaiting_language"
	StateAwaitingTemplateRequest SessionState = "awaiting_template_request"
	StateAwaitingFileOrLink      SessionState = "awaiting_file_or_link"
	StateAwaitingPriorAmount     SessionState = "awaiting_prior_amount"
	StateCompleted               SessionState = "completed"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
)

// ParseLanguage accepts the language codes and the button captions the
// original keyboards send.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ru", "russian", "русский":
		return LanguageRU, true
	case "en", "english":
		return LanguageEN, true
	}
	return "", false
}

// Session is one user's conversation state. All fields live in process memory
// only and are cleared on restart or cancel.
type Session struct {
	UserID   string
	State    SessionState
	Language Language

	// Pending holds the validated table between the file submission and the
	// carry-forward amount.
	Pending *PreparedTable

	// Totals is set once the pipeline completed for this session.
	Totals *AggregateTotals
}

func NewSession(userID string, initial SessionState) *Session {
	return &Session{
		UserID:   userID,
		State:    initial,
		Language: LanguageEN,
	}
}

// Reset discards all data and puts the session back to the initial state.
func (s *Session) Reset(initial SessionState) {
	s.State = initial
	s.Language = LanguageEN
	s.Pending = nil
	s.Totals = nil
}

// SessionSnapshot is a read-only view handed to the transport adapter.
type SessionSnapshot struct {
	UserID   string           `json:"user_id"`
	State    SessionState     `json:"state"`
	Language Language         `json:"language"`
	Totals   *AggregateTotals `json:"totals,omitempty"`
}

// TemplateFile is the generated entry workbook handed back to the transport.
type TemplateFile struct {
	Filename string
	Content  []byte
}

// TableSubmission is the file-or-link input of the AwaitingFileOrLink state.
// Exactly one of the two fields should be set.
type TableSubmission struct {
	Workbook []byte
	SheetURL string
}
