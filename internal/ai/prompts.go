package ai

import (
	"fmt"
	"strings"

	"skillbridge_backend/internal/model"
)

// RoleContext is the job-role slice every analysis/roadmap prompt needs,
// whether the role came from the store or from a custom request body.
type RoleContext struct {
	ID             *uint
	Title          string
	Description    string
	RequiredSkills []model.RequiredSkill
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatContext struct {
	JobRole  string
	Progress int
	GapCount int
	History  []ChatTurn
}

// ProgressContext enriches the assistant prompt with roadmap detail.
type ProgressContext struct {
	CompletedSkills  []string
	InProgressSkills []string
	RoadmapSteps     int
}

func gapAnalysisPrompt(resumeText string, role RoleContext) string {
	var b strings.Builder

	b.WriteString("You are a career advisor and skill gap analyzer. Analyze the following resume and compare it with the required job role.\n\n")
	fmt.Fprintf(&b, "Resume:\n%s\n\n", resumeText)
	fmt.Fprintf(&b, "Job Role: %s\nDescription: %s\n", role.Title, role.Description)

	if len(role.RequiredSkills) > 0 {
		names := make([]string, 0, len(role.RequiredSkills))
		for _, s := range role.RequiredSkills {
			names = append(names, s.Skill)
		}
		fmt.Fprintf(&b, "Required Skills: %s\n\n", strings.Join(names, ", "))
		b.WriteString("Analyze each required skill listed above and determine:\n")
	} else {
		b.WriteString("Required Skills: (Extract key skills from the job description above)\n\n")
		b.WriteString("Based on the job description, identify the key skills needed for this role and analyze each one. For each skill, determine:\n")
	}

	b.WriteString(`1. If the skill is mentioned in the resume
2. The current level of proficiency based on resume content
3. The required level for the job role
4. Priority level (critical/high/medium/low) based on importance
5. A brief description explaining the gap

Return ONLY a valid JSON object in this exact format (no markdown, no code blocks, no extra text):
{
  "gaps": [
    {
      "skill": "skill name",
      "currentLevel": "beginner/intermediate/advanced/expert/not_mentioned",
      "requiredLevel": "beginner/intermediate/advanced/expert",
      "priority": "low/medium/high/critical",
      "description": "brief explanation of the gap"
    }
  ],
  "summary": "overall assessment of the candidate's readiness for this role"
}

Return ONLY the JSON object, nothing else.`)

	return b.String()
}

func roadmapPrompt(gaps []model.SkillGap, roleTitle string) string {
	var b strings.Builder

	b.WriteString("Create a personalized learning roadmap to bridge skill gaps for the following job role.\n\n")
	fmt.Fprintf(&b, "Job Role: %s\nSkill Gaps:\n", roleTitle)
	for _, gap := range gaps {
		fmt.Fprintf(&b, "- %s (current: %s, required: %s, priority: %s)\n",
			gap.Skill, gap.CurrentLevel, gap.RequiredLevel, gap.Priority)
	}

	b.WriteString(`
Provide a detailed roadmap in JSON format:
{
  "steps": [
    {
      "skill": "skill name",
      "resources": ["resource 1", "resource 2", "resource 3"],
      "estimatedTime": "X weeks/months",
      "description": "what to learn",
      "order": 1
    }
  ],
  "totalDuration": "estimated total time"
}

Order the steps by priority, highest first, one step per skill gap. Only return valid JSON, no additional text.`)

	return b.String()
}

func resourcesPrompt(skill, level string) string {
	return fmt.Sprintf(`Provide specific learning resources for learning "%s" at "%s" level. Include:
- Online courses (with platform names)
- Books
- Tutorials
- Practice projects
- Communities

Return in JSON format:
{
  "resources": [
    {
      "type": "course/book/tutorial/project/community",
      "name": "resource name",
      "url": "if available",
      "description": "brief description"
    }
  ]
}

Only return valid JSON.`, skill, level)
}

func playlistsPrompt(skill, level string) string {
	return fmt.Sprintf(`Find the best FREE YouTube playlists and video series for learning "%s" at "%s" level.

Return a JSON object with this exact format:
{
  "playlists": [
    {
      "title": "Playlist title",
      "channel": "Channel name",
      "url": "YouTube playlist URL (full URL starting with https://www.youtube.com)",
      "description": "Brief description of what this playlist covers",
      "videoCount": "Number of videos (if known)",
      "duration": "Total estimated duration (if known)"
    }
  ]
}

Focus on:
- Free, high-quality playlists
- Popular channels with good teaching
- Complete series/playlists (not single videos)
- Recent content (if possible)

Return ONLY valid JSON, no markdown, no code blocks.`, skill, level)
}

func quizPrompt(skill, topic, level string) string {
	return fmt.Sprintf(`Generate a quiz to test understanding of "%s" related to "%s" at "%s" level.

Create 5 multiple-choice questions. Each question should have:
- A clear question
- 4 answer options (A, B, C, D)
- Only ONE correct answer
- Brief explanation for the correct answer

Return ONLY a valid JSON object in this exact format:
{
  "questions": [
    {
      "question": "Question text",
      "options": {
        "A": "Option A text",
        "B": "Option B text",
        "C": "Option C text",
        "D": "Option D text"
      },
      "correctAnswer": "A",
      "explanation": "Brief explanation of why this is correct"
    }
  ]
}

Make questions practical and relevant to real-world application. Return ONLY JSON, no markdown.`, topic, skill, level)
}

func chatPrompt(message string, cc ChatContext) string {
	var b strings.Builder

	b.WriteString("You are a helpful career and upskilling assistant. The user is working on upskilling for a job role.\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Job Role: %s\n", orDefault(cc.JobRole, "Not selected"))
	fmt.Fprintf(&b, "- Current Progress: %d%%\n", cc.Progress)
	fmt.Fprintf(&b, "- Skill Gaps Identified: %d\n\n", cc.GapCount)

	writeHistory(&b, cc.History)

	fmt.Fprintf(&b, "User Question: %s\n\n", message)
	b.WriteString("Provide a helpful, encouraging, and actionable response. Be concise but thorough.")

	return b.String()
}

func enhancedChatPrompt(message string, cc ChatContext, pc ProgressContext) string {
	var b strings.Builder

	b.WriteString("You are an advanced AI career and upskilling assistant. You help users with research, learning, and career development.\n\n")
	b.WriteString("User Context:\n")
	fmt.Fprintf(&b, "- Target Job Role: %s\n", orDefault(cc.JobRole, "Not selected"))
	fmt.Fprintf(&b, "- Overall Progress: %d%%\n", cc.Progress)
	fmt.Fprintf(&b, "- Skill Gaps Identified: %d\n", cc.GapCount)
	fmt.Fprintf(&b, "- Completed Skills: %s\n", orDefault(strings.Join(pc.CompletedSkills, ", "), "None yet"))
	fmt.Fprintf(&b, "- Skills In Progress: %s\n", orDefault(strings.Join(pc.InProgressSkills, ", "), "None"))
	fmt.Fprintf(&b, "- Current Roadmap Steps: %d steps\n\n", pc.RoadmapSteps)

	writeHistory(&b, cc.History)

	fmt.Fprintf(&b, "User Question: %s\n\n", message)
	b.WriteString(`Provide a comprehensive, helpful response that:
1. Directly answers the question
2. If research-related, provide detailed insights and current best practices
3. If asking about next steps, recommend specific projects based on completed skills
4. If asking about learning, suggest practical resources and hands-on projects
5. Be encouraging and actionable

For project recommendations, suggest projects that build on completed skills, help learn new skills from the roadmap, and have clear real-world learning outcomes.

Be conversational, helpful, and specific.`)

	return b.String()
}

func writeHistory(b *strings.Builder, history []ChatTurn) {
	if len(history) == 0 {
		return
	}
	b.WriteString("Recent conversation:\n")
	for _, turn := range history {
		fmt.Fprintf(b, "%s: %s\n", turn.Role, turn.Content)
	}
	b.WriteString("\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
