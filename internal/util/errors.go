package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrJobRoleNotFound  = errors.New("job role not found")
	ErrJobRoleExists    = errors.New("job role with this title already exists")
	ErrProfileNotFound  = errors.New("career profile not found")
	ErrResumeRequired   = errors.New("upload a resume before requesting analysis")
	ErrAnalysisRequired = errors.New("run a skill gap analysis before requesting a roadmap")
	ErrRoadmapNotFound  = errors.New("no roadmap has been generated yet")
	ErrStepNotFound     = errors.New("roadmap step not found")
	ErrQuizNotFound     = errors.New("no quiz exists for this step")
	ErrQuizRequired     = errors.New("pass the quiz before completing this step")
	ErrInvalidStatus    = errors.New("invalid step status")
	ErrIncompleteAnswer = errors.New("an answer is required for every question")
	ErrInvalidAnswer    = errors.New("answers must be one of A, B, C or D")
	ErrFileTooLarge     = errors.New("resume file exceeds the size limit")
)
