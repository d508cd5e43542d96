package session

import (
	"time"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/domain/chat"
)

// Widget names one of the two independent chat panels.
type Widget string

const (
	WidgetTutor     Widget = "tutor"
	WidgetAssistant Widget = "assistant"
)

// State is everything the page knows about one browser session: the visible
// level, the subject the tutor talks about, and both transcripts. Request ids
// are per widget and only grow; a reply carrying an older id than the latest
// is stale.
type State struct {
	ID      string        `json:"id"`
	Level   catalog.Level `json:"level"`
	Subject string        `json:"subject"`
	// CoursesLevel is the level whose container last rendered Subject's
	// courses. Switching level leaves the newly visible container empty.
	CoursesLevel catalog.Level   `json:"courses_level,omitempty"`
	Tutor        chat.Transcript `json:"tutor"`
	Assistant    chat.Transcript `json:"assistant"`

	TutorRequest     uint64 `json:"tutor_request"`
	AssistantRequest uint64 `json:"assistant_request"`

	UpdatedAt time.Time `json:"updated_at"`
}

// New returns the state of a freshly loaded page: primary level visible, no
// subject chosen, empty transcripts.
func New(id string) State {
	return State{
		ID:        id,
		Level:     catalog.LevelPrimary,
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *State) Transcript(w Widget) *chat.Transcript {
	if w == WidgetAssistant {
		return &s.Assistant
	}
	return &s.Tutor
}

// NextRequest issues a new request id for the widget, superseding all earlier ones.
func (s *State) NextRequest(w Widget) uint64 {
	if w == WidgetAssistant {
		s.AssistantRequest++
		return s.AssistantRequest
	}
	s.TutorRequest++
	return s.TutorRequest
}

func (s *State) LatestRequest(w Widget) uint64 {
	if w == WidgetAssistant {
		return s.AssistantRequest
	}
	return s.TutorRequest
}

func (s *State) Append(w Widget, m chat.Message) {
	t := s.Transcript(w)
	*t = append(*t, m)
}

func (s *State) Remove(w Widget, messageID string) {
	t := s.Transcript(w)
	*t = t.Without(messageID)
}

func (s State) clone() State {
	s.Tutor = append(chat.Transcript(nil), s.Tutor...)
	s.Assistant = append(chat.Transcript(nil), s.Assistant...)
	return s
}
