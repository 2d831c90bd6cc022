package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillbridge_backend/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrateCreatesSchemaAndSeedsRoles(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	var roles []model.JobRole
	require.NoError(t, db.Find(&roles).Error)
	assert.Len(t, roles, 6)

	titles := make(map[string]bool, len(roles))
	for _, role := range roles {
		titles[role.Title] = true
		assert.NotEmpty(t, role.RequiredSkills)
	}
	assert.True(t, titles["Full Stack Developer"])
	assert.True(t, titles["Data Scientist"])
}

func TestMigrateSeedsOnlyOnce(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&model.JobRole{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}
