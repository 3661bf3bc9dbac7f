package integration_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployerProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, user := ts.CreateAndLoginEmployer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/profile", token, map[string]interface{}{"companyName": "Acme"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"companyName":    "Acme",
		"companyWebsite": "https://acme.example.com",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created models.EmployerProfile
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, "Acme", created.CompanyName)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{"companyName": "Again"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Employer profile already exists")

	res, body = ts.SendRequest(t, http.MethodPut, "/api/profile", token, map[string]interface{}{"companyName": "Acme Corp"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var got models.EmployerProfile
	helpers.DecodeJSON(t, body, &got)
	assert.Equal(t, "Acme Corp", got.CompanyName)
}

func TestJobSeekerProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, user := ts.CreateAndLoginJobSeeker(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"resume": "https://cv.example.com/me.pdf",
		"skills": "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created models.JobSeekerProfile
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, user.ID, created.UserID)
	require.NotNil(t, created.Skills)
	assert.Equal(t, "Go, SQL", *created.Skills)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{"resume": "x"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Job seeker profile already exists")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{"skills": "no resume"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "https://cv.example.com/me.pdf")
}

func TestUploadResume(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t, helpers.WithMaxResumeSize(1024))
	seekerToken, user := ts.CreateAndLoginJobSeeker(t)
	employerToken, _ := ts.CreateAndLoginEmployer(t)
	content := []byte("%PDF-1.4 resume")

	res, _ := ts.UploadFile(t, "/api/profile/resume", seekerToken, "file", "cv.pdf", content)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "без профиля загрузка невозможна")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", seekerToken, map[string]interface{}{"resume": "pending"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.UploadFile(t, "/api/profile/resume", employerToken, "file", "cv.pdf", content)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "insufficient role")

	res, _ = ts.UploadFile(t, "/api/profile/resume", seekerToken, "file", "cv.exe", content)
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)

	res, _ = ts.UploadFile(t, "/api/profile/resume", seekerToken, "file", "big.pdf", bytes.Repeat([]byte("a"), 4096))
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	res, _ = ts.UploadFile(t, "/api/profile/resume", seekerToken, "attachment", "cv.pdf", content)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.UploadFile(t, "/api/profile/resume", seekerToken, "file", "cv.pdf", content)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var profile models.JobSeekerProfile
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, user.ID, profile.UserID)
	assert.True(t, strings.HasPrefix(profile.Resume, "/uploads/resumes/"), profile.Resume)
	assert.True(t, strings.HasSuffix(profile.Resume, ".pdf"), profile.Resume)

	res, body = ts.SendRequest(t, http.MethodGet, profile.Resume, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, string(content), body)
}
