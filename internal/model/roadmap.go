package model

import "time"

type StepStatus string

const (
	StepNotStarted StepStatus = "not_started"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

func ValidStepStatus(s StepStatus) bool {
	switch s {
	case StepNotStarted, StepInProgress, StepCompleted:
		return true
	}
	return false
}

type QuizOptions struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

type QuizQuestion struct {
	Question      string      `json:"question"`
	Options       QuizOptions `json:"options"`
	CorrectAnswer string      `json:"correctAnswer"`
	Explanation   string      `json:"explanation"`
	UserAnswer    *string     `json:"userAnswer"`
	IsCorrect     *bool       `json:"isCorrect"`
}

type Quiz struct {
	Questions   []QuizQuestion `json:"questions"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Passed      bool           `json:"passed"`
	PassedAt    *time.Time     `json:"passedAt"`
}

type PlaylistEntry struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	URL         string `json:"url"`
	Description string `json:"description"`
	VideoCount  string `json:"videoCount"`
	Duration    string `json:"duration"`
}

// RoadmapStep is one learning unit targeting one skill gap. Skill and
// Priority are copied from the originating gap when the roadmap is
// generated, so accessibility math never has to look the gap up by index.
type RoadmapStep struct {
	Skill            string          `json:"skill"`
	Priority         SkillPriority   `json:"priority"`
	Resources        []string        `json:"resources"`
	EstimatedTime    string          `json:"estimatedTime"`
	Description      string          `json:"description"`
	Status           StepStatus      `json:"status"`
	CompletedAt      *time.Time      `json:"completedAt"`
	Quiz             *Quiz           `json:"quiz,omitempty"`
	YouTubePlaylists []PlaylistEntry `json:"youtubePlaylists,omitempty"`
}

type Roadmap struct {
	Steps         []RoadmapStep `json:"steps"`
	TotalDuration string        `json:"totalDuration"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// HasUnpassedQuiz reports whether the step is gated on a quiz the user has
// not passed yet.
func (s *RoadmapStep) HasUnpassedQuiz() bool {
	return s.Quiz != nil && len(s.Quiz.Questions) > 0 && !s.Quiz.Passed
}

type LearningResource struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
