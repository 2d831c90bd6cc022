package model

import (
	"bytes"
	"encoding/json"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
	LevelNotMentioned SkillLevel = "not_mentioned"
)

type SkillPriority string

const (
	PriorityLow      SkillPriority = "low"
	PriorityMedium   SkillPriority = "medium"
	PriorityHigh     SkillPriority = "high"
	PriorityCritical SkillPriority = "critical"
)

// SkillGap is one skill where resume-evidenced proficiency falls below the
// level the target role requires.
type SkillGap struct {
	Skill         string        `json:"skill"`
	CurrentLevel  SkillLevel    `json:"currentLevel"`
	RequiredLevel SkillLevel    `json:"requiredLevel"`
	Priority      SkillPriority `json:"priority"`
	Description   string        `json:"description"`
}

// RequiredSkill is a role requirement. Upstream data carries these either as
// bare strings or as {skill,level,importance} objects; UnmarshalJSON
// normalizes both shapes here so nothing downstream sees the union.
type RequiredSkill struct {
	Skill      string        `json:"skill"`
	Level      SkillLevel    `json:"level"`
	Importance SkillPriority `json:"importance"`
}

func (r *RequiredSkill) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = RequiredSkill{Skill: name, Level: LevelIntermediate, Importance: PriorityMedium}
		return nil
	}

	type alias RequiredSkill
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Level == "" {
		a.Level = LevelIntermediate
	}
	if a.Importance == "" {
		a.Importance = PriorityMedium
	}
	*r = RequiredSkill(a)
	return nil
}

func ValidSkillLevel(l SkillLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}
