package repositories

import (
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"jobboard_backend/database"
	"jobboard_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dbCounter int64

// newTestDB - отдельная in-memory база на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&dbCounter, 1)
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", n)
	db, err := database.Open(database.Options{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: email, PasswordHash: "hash", Role: role}
	require.NoError(t, NewUserRepository().CreateIfAbsent(db, user))
	return user
}

func createJob(t *testing.T, db *gorm.DB, employerID uint) *models.Job {
	t.Helper()
	job := &models.Job{
		Title: "Backend", Description: "Go", Company: "Acme",
		Location: "Remote", Category: "IT", Salary: 100, EmployerID: employerID,
	}
	require.NoError(t, NewJobRepository().Create(db, job))
	return job
}

func TestUserRepository_CreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := createUser(t, db, "a@x.com", models.UserRoleJobSeeker)
	assert.NotZero(t, user.ID)

	err := repo.CreateIfAbsent(db, &models.User{Email: "a@x.com", Name: "B", PasswordHash: "h", Role: models.UserRoleEmployer})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := repo.FindByEmail(db, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByID(db, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApplicationRepository_DuplicateIsRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository()

	employer := createUser(t, db, "emp@x.com", models.UserRoleEmployer)
	seeker := createUser(t, db, "seeker@x.com", models.UserRoleJobSeeker)
	job := createJob(t, db, employer.ID)

	first := &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.CreateIfAbsent(db, first))

	second := &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, Status: models.ApplicationStatusPending}
	assert.ErrorIs(t, repo.CreateIfAbsent(db, second), ErrAlreadyApplied)

	apps, err := repo.FindByJob(db, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].JobSeeker)
	assert.Equal(t, "seeker@x.com", apps[0].JobSeeker.Email)
}

func TestApplicationRepository_ConcurrentApplyCreatesOne(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository()

	employer := createUser(t, db, "emp@x.com", models.UserRoleEmployer)
	seeker := createUser(t, db, "seeker@x.com", models.UserRoleJobSeeker)
	job := createJob(t, db, employer.ID)

	const workers = 8
	var wg sync.WaitGroup
	var created, conflicts int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.CreateIfAbsent(db, &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, Status: models.ApplicationStatusPending})
			switch err {
			case nil:
				atomic.AddInt64(&created, 1)
			case ErrAlreadyApplied:
				atomic.AddInt64(&conflicts, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created)
	assert.Equal(t, int64(workers-1), conflicts)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestJobRepository_DeleteCascadesApplications(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobRepository()
	apps := NewApplicationRepository()

	employer := createUser(t, db, "emp@x.com", models.UserRoleEmployer)
	seeker := createUser(t, db, "seeker@x.com", models.UserRoleJobSeeker)
	job := createJob(t, db, employer.ID)
	require.NoError(t, apps.CreateIfAbsent(db, &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, Status: models.ApplicationStatusPending}))

	require.NoError(t, jobs.Delete(db, job.ID))
	assert.ErrorIs(t, jobs.Delete(db, job.ID), ErrJobNotFound)

	mine, err := apps.FindByJobSeeker(db, seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestProfileRepository_OnePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository()

	employer := createUser(t, db, "emp@x.com", models.UserRoleEmployer)

	require.NoError(t, repo.CreateEmployerIfAbsent(db, &models.EmployerProfile{UserID: employer.ID, CompanyName: "Acme"}))
	assert.ErrorIs(t, repo.CreateEmployerIfAbsent(db, &models.EmployerProfile{UserID: employer.ID, CompanyName: "Other"}), ErrProfileExists)

	profile, err := repo.FindEmployerByUserID(db, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.CompanyName)

	_, err = repo.FindJobSeekerByUserID(db, employer.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// На Postgres конфликт дает пустой RETURNING, а не ошибку
func TestApplicationRepository_PostgresOnConflict(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "applications"`) + `.*ON CONFLICT \("job_id","job_seeker_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	err = NewApplicationRepository().CreateIfAbsent(db, &models.Application{JobID: 1, JobSeekerID: 2, Status: models.ApplicationStatusPending})
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
