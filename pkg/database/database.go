package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	logMode := logger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Schema changes only run when asked for via -migrate / -migrate-only.
	if cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates the schema and seeds the built-in job roles on an empty
// table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.JobRole{},
		&model.CareerProfile{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	return seedJobRoles(db)
}

func seedJobRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.JobRole{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, role := range defaultJobRoles() {
		if err := db.Create(&role).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded default job roles")
	return nil
}

func defaultJobRoles() []model.JobRole {
	return []model.JobRole{
		{
			Title:           "Full Stack Developer",
			Description:     "Develop and maintain web applications using both frontend and backend technologies",
			Category:        "Software Development",
			ExperienceLevel: "mid",
			RequiredSkills: model.RequiredSkills{
				{Skill: "JavaScript", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "React", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Node.js", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Database Design", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
				{Skill: "RESTful APIs", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Git", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
			},
			AverageSalary: model.SalaryRange{Min: 70000, Max: 120000, Currency: "USD"},
		},
		{
			Title:           "Data Scientist",
			Description:     "Analyze complex data sets to extract insights and build predictive models",
			Category:        "Data Science",
			ExperienceLevel: "mid",
			RequiredSkills: model.RequiredSkills{
				{Skill: "Python", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "Machine Learning", Level: model.LevelIntermediate, Importance: model.PriorityCritical},
				{Skill: "Statistics", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "SQL", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Data Visualization", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
				{Skill: "TensorFlow/PyTorch", Level: model.LevelBeginner, Importance: model.PriorityMedium},
			},
			AverageSalary: model.SalaryRange{Min: 90000, Max: 150000, Currency: "USD"},
		},
		{
			Title:           "DevOps Engineer",
			Description:     "Manage infrastructure, CI/CD pipelines, and ensure system reliability",
			Category:        "DevOps",
			ExperienceLevel: "mid",
			RequiredSkills: model.RequiredSkills{
				{Skill: "Docker", Level: model.LevelIntermediate, Importance: model.PriorityCritical},
				{Skill: "Kubernetes", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "AWS/Cloud Services", Level: model.LevelIntermediate, Importance: model.PriorityCritical},
				{Skill: "Linux", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "CI/CD", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Monitoring Tools", Level: model.LevelBeginner, Importance: model.PriorityMedium},
			},
			AverageSalary: model.SalaryRange{Min: 80000, Max: 130000, Currency: "USD"},
		},
		{
			Title:           "UI/UX Designer",
			Description:     "Design user interfaces and create exceptional user experiences",
			Category:        "Design",
			ExperienceLevel: "mid",
			RequiredSkills: model.RequiredSkills{
				{Skill: "Figma", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "User Research", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Prototyping", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Design Systems", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
				{Skill: "HTML/CSS", Level: model.LevelBeginner, Importance: model.PriorityMedium},
				{Skill: "Accessibility", Level: model.LevelBeginner, Importance: model.PriorityLow},
			},
			AverageSalary: model.SalaryRange{Min: 60000, Max: 100000, Currency: "USD"},
		},
		{
			Title:           "Cloud Architect",
			Description:     "Design and implement cloud infrastructure solutions",
			Category:        "Cloud Computing",
			ExperienceLevel: "senior",
			RequiredSkills: model.RequiredSkills{
				{Skill: "AWS", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "Azure", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Terraform", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "System Design", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "Security", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Networking", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
			},
			AverageSalary: model.SalaryRange{Min: 120000, Max: 180000, Currency: "USD"},
		},
		{
			Title:           "Mobile App Developer",
			Description:     "Develop native or cross-platform mobile applications",
			Category:        "Mobile Development",
			ExperienceLevel: "mid",
			RequiredSkills: model.RequiredSkills{
				{Skill: "React Native", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "Swift/Kotlin", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
				{Skill: "Mobile UI/UX", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "API Integration", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
				{Skill: "App Store Deployment", Level: model.LevelBeginner, Importance: model.PriorityMedium},
				{Skill: "Performance Optimization", Level: model.LevelBeginner, Importance: model.PriorityMedium},
			},
			AverageSalary: model.SalaryRange{Min: 70000, Max: 110000, Currency: "USD"},
		},
	}
}
