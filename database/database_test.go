package database

import (
	"errors"
	"fmt"
	"testing"

	"jobboard_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"mysql duplicate", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), true},
		{"mysql other", &mysql.MySQLError{Number: 1452}, false},
		{"sqlite text", errors.New("UNIQUE constraint failed: users.email"), true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(Options{Driver: "sqlite", DSN: "file::memory:?_pragma=foreign_keys(1)"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	user := models.User{Email: "a@x.com", Name: "A", PasswordHash: "h", Role: models.UserRoleJobSeeker}
	require.NoError(t, db.Create(&user).Error)

	dup := models.User{Email: "a@x.com", Name: "B", PasswordHash: "h", Role: models.UserRoleJobSeeker}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestOpenSQLite_EnablesForeignKeys(t *testing.T) {
	// DSN без _pragma: внешние ключи включает Open
	db, err := Open(Options{Driver: "sqlite", DSN: "file:fk_cascade?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	employer := models.User{Email: "e@x.com", Name: "E", PasswordHash: "h", Role: models.UserRoleEmployer}
	seeker := models.User{Email: "s@x.com", Name: "S", PasswordHash: "h", Role: models.UserRoleJobSeeker}
	require.NoError(t, db.Create(&employer).Error)
	require.NoError(t, db.Create(&seeker).Error)

	job := models.Job{Title: "T", Description: "D", Company: "C", Location: "L", Category: "X", Salary: 1, EmployerID: employer.ID}
	require.NoError(t, db.Create(&job).Error)
	app := models.Application{JobID: job.ID, JobSeekerID: seeker.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, db.Create(&app).Error)

	require.NoError(t, db.Delete(&models.Job{}, job.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Zero(t, count)
}
