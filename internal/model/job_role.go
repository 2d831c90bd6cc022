package model

type RequiredSkills []RequiredSkill

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `gorm:"size:10;default:'USD'" json:"currency"`
}

// swagger:model JobRole
type JobRole struct {
	BaseModel
	Title           string         `gorm:"size:150;unique;not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Category        string         `gorm:"size:100" json:"category"`
	ExperienceLevel string         `gorm:"size:20;default:'mid'" json:"experienceLevel"`
	RequiredSkills  RequiredSkills `gorm:"type:json;serializer:json" json:"requiredSkills"`
	AverageSalary   SalaryRange    `gorm:"embedded;embeddedPrefix:salary_" json:"averageSalary"`
}

func (JobRole) TableName() string {
	return "job_roles"
}
