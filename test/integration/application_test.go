package integration_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyForJob(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	employerToken, _ := ts.CreateAndLoginEmployer(t)
	seekerToken, seeker := ts.CreateAndLoginJobSeeker(t)
	job := ts.CreateJob(t, employerToken, "Go Developer")
	path := fmt.Sprintf("/api/application/apply/%d", job.ID)

	res, body := ts.SendRequest(t, http.MethodPost, path, seekerToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var app models.Application
	helpers.DecodeJSON(t, body, &app)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, seeker.ID, app.JobSeekerID)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	res, body = ts.SendRequest(t, http.MethodPost, path, seekerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "already applied")

	res, body = ts.SendRequest(t, http.MethodPost, path, employerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Only job seekers can apply")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/application/apply/9999", seekerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplyForJob_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	employerToken, _ := ts.CreateAndLoginEmployer(t)
	seekerToken, _ := ts.CreateAndLoginJobSeeker(t)
	job := ts.CreateJob(t, employerToken, "Race")
	path := fmt.Sprintf("/api/application/apply/%d", job.ID)

	const attempts = 5
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _ := ts.SendRequest(t, http.MethodPost, path, seekerToken, nil)
			codes[i] = res.StatusCode
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	ownerToken, _ := ts.CreateAndLoginEmployer(t)
	otherToken, _ := ts.CreateAndLoginEmployer(t)
	seekerToken, _ := ts.CreateAndLoginJobSeeker(t)
	job := ts.CreateJob(t, ownerToken, "Status")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/application/apply/%d", job.ID), seekerToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var app models.Application
	helpers.DecodeJSON(t, body, &app)
	path := fmt.Sprintf("/api/application/status/%d", app.ID)

	res, body = ts.SendRequest(t, http.MethodPut, path, otherToken, map[string]interface{}{"status": "ACCEPTED"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assertStoredStatus(t, ts, app.ID, models.ApplicationStatusPending)

	res, body = ts.SendRequest(t, http.MethodPut, path, ownerToken, map[string]interface{}{"status": "HIRED"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid application status")
	assertStoredStatus(t, ts, app.ID, models.ApplicationStatusPending)

	res, body = ts.SendRequest(t, http.MethodPut, path, ownerToken, map[string]interface{}{"status": "ACCEPTED"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated models.Application
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/application/status/9999", ownerToken, map[string]interface{}{"status": "REJECTED"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListApplications(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	employerToken, _ := ts.CreateAndLoginEmployer(t)
	seekerAToken, seekerA := ts.CreateAndLoginJobSeeker(t)
	seekerBToken, _ := ts.CreateAndLoginJobSeeker(t)
	jobOne := ts.CreateJob(t, employerToken, "One")
	jobTwo := ts.CreateJob(t, employerToken, "Two")

	for _, apply := range []struct {
		token string
		jobID uint
	}{
		{seekerAToken, jobOne.ID},
		{seekerAToken, jobTwo.ID},
		{seekerBToken, jobOne.ID},
	} {
		res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/application/apply/%d", apply.jobID), apply.token, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/application/job/%d", jobOne.ID), employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var forJob []models.Application
	helpers.DecodeJSON(t, body, &forJob)
	require.Len(t, forJob, 2)
	require.NotNil(t, forJob[0].JobSeeker)
	assert.Equal(t, seekerA.Email, forJob[0].JobSeeker.Email)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/application/myapplies", seekerAToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine []models.Application
	helpers.DecodeJSON(t, body, &mine)
	require.Len(t, mine, 2)
	for _, app := range mine {
		assert.Equal(t, seekerA.ID, app.JobSeekerID)
		require.NotNil(t, app.Job)
	}

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/application/job/9999", employerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/application/myapplies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func assertStoredStatus(t *testing.T, ts *helpers.TestServer, appID uint, want models.ApplicationStatus) {
	t.Helper()
	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, appID).Error)
	assert.Equal(t, want, stored.Status)
}
