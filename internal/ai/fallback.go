package ai

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"skillbridge_backend/internal/model"
)

// Deterministic, input-derived substitutes for each generation task, used
// when the external service is unreachable or over quota.

// commonSkills is the sample drawn on when a role ships no explicit skill
// list; matches against resume or role description decide inclusion.
var commonSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "Docker", "AWS", "Git",
}

const fallbackSkillSample = 5

func skillMentioned(text, skill string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(skill))
}

// fallbackCurrentLevel derives the assumed current level: one tier below
// the requirement when the resume mentions the skill, not_mentioned
// otherwise.
func fallbackCurrentLevel(required model.SkillLevel, mentioned bool) model.SkillLevel {
	if !mentioned {
		return model.LevelNotMentioned
	}
	switch required {
	case model.LevelExpert:
		return model.LevelAdvanced
	case model.LevelAdvanced:
		return model.LevelIntermediate
	case model.LevelIntermediate:
		return model.LevelBeginner
	default:
		return model.LevelBeginner
	}
}

func fallbackSummary(gaps []model.SkillGap, roleTitle string) string {
	if len(gaps) == 0 {
		return fmt.Sprintf("Great job! Your resume already covers the key skills for %s.", roleTitle)
	}
	urgent := 0
	for _, gap := range gaps {
		if gap.Priority == model.PriorityCritical || gap.Priority == model.PriorityHigh {
			urgent++
		}
	}
	if urgent > 0 {
		return fmt.Sprintf("Focus on the %d highest-priority skills first to become job-ready for %s.", urgent, roleTitle)
	}
	return fmt.Sprintf("Keep strengthening the listed skills to align fully with the %s role requirements.", roleTitle)
}

// FallbackGapAnalysis produces one gap per required skill via literal
// case-insensitive matching against the resume text. Roles without a skill
// list get a capped sample of common skills found in the resume or the role
// description.
func FallbackGapAnalysis(resumeText string, role RoleContext) *model.SkillGapAnalysis {
	skills := role.RequiredSkills
	if len(skills) == 0 {
		for _, name := range commonSkills {
			if skillMentioned(resumeText, name) || skillMentioned(role.Description, name) {
				skills = append(skills, model.RequiredSkill{
					Skill:      name,
					Level:      model.LevelIntermediate,
					Importance: model.PriorityMedium,
				})
				if len(skills) == fallbackSkillSample {
					break
				}
			}
		}
	}

	gaps := make([]model.SkillGap, 0, len(skills))
	for _, req := range skills {
		mentioned := skillMentioned(resumeText, req.Skill)
		description := fmt.Sprintf("Your resume does not mention %s. Start learning the fundamentals and highlight relevant experience.", req.Skill)
		if mentioned {
			description = fmt.Sprintf("Strengthen your proficiency in %s to reach the %s level expected for this role.", req.Skill, req.Level)
		}
		gaps = append(gaps, model.SkillGap{
			Skill:         req.Skill,
			CurrentLevel:  fallbackCurrentLevel(req.Level, mentioned),
			RequiredLevel: req.Level,
			Priority:      req.Importance,
			Description:   description,
		})
	}

	if len(gaps) == 0 {
		gaps = []model.SkillGap{{
			Skill:         "General Skills",
			CurrentLevel:  model.LevelIntermediate,
			RequiredLevel: model.LevelAdvanced,
			Priority:      model.PriorityMedium,
			Description:   "Review the job description and identify key skills to develop.",
		}}
	}

	return &model.SkillGapAnalysis{
		Gaps:       gaps,
		Summary:    fallbackSummary(gaps, role.Title),
		JobRoleID:  role.ID,
		AnalyzedAt: time.Now(),
	}
}

// FallbackRoadmap derives one generic step per gap, keeping gap order. Time
// estimates key off priority: urgent skills get the longer block.
func FallbackRoadmap(gaps []model.SkillGap) *model.Roadmap {
	steps := make([]model.RoadmapStep, 0, len(gaps))
	for _, gap := range gaps {
		estimate := "1-2 weeks"
		if gap.Priority == model.PriorityCritical || gap.Priority == model.PriorityHigh {
			estimate = "3-4 weeks"
		}
		steps = append(steps, model.RoadmapStep{
			Skill:    gap.Skill,
			Priority: gap.Priority,
			Resources: []string{
				fmt.Sprintf("Complete a beginner-friendly %s course on Coursera or Udemy", gap.Skill),
				fmt.Sprintf("Work through official %s documentation and tutorials", gap.Skill),
				fmt.Sprintf("Build a small project highlighting your %s proficiency", gap.Skill),
			},
			EstimatedTime: estimate,
			Description:   fmt.Sprintf("Focus on %s to move from %s to %s.", gap.Skill, gap.CurrentLevel, gap.RequiredLevel),
			Status:        model.StepNotStarted,
		})
	}

	total := "Up to date"
	if len(steps) > 0 {
		total = fmt.Sprintf("%d-week plan (estimated)", len(steps)*2)
	}
	return &model.Roadmap{Steps: steps, TotalDuration: total, CreatedAt: time.Now()}
}

func FallbackResources(skill, level string) []model.LearningResource {
	return []model.LearningResource{
		{
			Type:        "course",
			Name:        fmt.Sprintf("%s fundamentals on Codecademy", skill),
			URL:         "https://www.codecademy.com",
			Description: fmt.Sprintf("Interactive lessons to build %s basics.", skill),
		},
		{
			Type:        "tutorial",
			Name:        fmt.Sprintf("%s quickstart guide", skill),
			Description: "Follow a hands-on tutorial from official documentation or a reputable blog.",
		},
		{
			Type:        "project",
			Name:        fmt.Sprintf("%s portfolio project", skill),
			Description: fmt.Sprintf("Create a mini project applying %s at a %s level.", skill, level),
		},
	}
}

func FallbackPlaylists(skill, level string) []model.PlaylistEntry {
	query := url.QueryEscape(fmt.Sprintf("%s tutorial playlist %s", skill, level))
	return []model.PlaylistEntry{{
		Title:       fmt.Sprintf("%s Tutorial Playlist", skill),
		Channel:     "Search on YouTube",
		URL:         "https://www.youtube.com/results?search_query=" + query,
		Description: fmt.Sprintf("Search YouTube for \"%s %s tutorial playlist\"", skill, level),
		VideoCount:  "Various",
		Duration:    "Varies",
	}}
}

func FallbackQuiz(topic string) []model.QuizQuestion {
	return []model.QuizQuestion{{
		Question: fmt.Sprintf("What is a key concept in %s?", topic),
		Options: model.QuizOptions{
			A: "Basic understanding",
			B: "Advanced technique",
			C: "Common practice",
			D: "All of the above",
		},
		CorrectAnswer: "D",
		Explanation:   fmt.Sprintf("All options are relevant to understanding %s.", topic),
	}}
}

func FallbackChat(cc ChatContext) string {
	role := orDefault(cc.JobRole, "exploring roles")
	return fmt.Sprintf("You're currently focusing on %s. You've completed about %d%% of your roadmap. "+
		"Start by reviewing your highest priority skill gaps and choose one to work on today. "+
		"Let me know which skill you want resources for!", role, cc.Progress)
}

func FallbackChatEnhanced(cc ChatContext, pc ProgressContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You're working on %s. ", orDefault(cc.JobRole, "your career goals"))
	if len(pc.CompletedSkills) > 0 {
		fmt.Fprintf(&b, "You've completed: %s. ", strings.Join(pc.CompletedSkills, ", "))
		b.WriteString("Great progress! Consider building a project combining these skills. ")
	}
	b.WriteString("Focus on your highest priority skill gaps. ")
	b.WriteString("Would you like project recommendations or learning resources?")
	return b.String()
}
