package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAppError_WithDetailsDoesNotMutateOriginal(t *testing.T) {
	detailed := ErrJobNotFound.WithDetails(map[string]string{"id": "7"})

	assert.Nil(t, ErrJobNotFound.Details)
	assert.NotNil(t, detailed.Details)
	assert.True(t, errors.Is(detailed, ErrJobNotFound))
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppError_MarshalJSONHidesCause(t *testing.T) {
	err := Wrap(errors.New("secret"), CodeDatabaseError, "system", "db down", http.StatusInternalServerError)

	raw, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"code":"DATABASE_ERROR","domain":"system","message":"db down"}`, string(raw))
}

func TestConflictErrorsAreBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrAlreadyApplied.HTTPCode)
	assert.Equal(t, CodeAlreadyExists, ErrJobSeekerProfileExists.Code)
}

func TestHandleError_Envelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
		wantMsg    string
	}{
		{"app error", ErrInvalidPassword, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid Password"},
		{"wrapped app error", errors.Join(errors.New("ctx"), ErrJobNotFound), http.StatusNotFound, CodeNotFound, "Job not found"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, CodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Error struct {
					Code    ErrorCode `json:"code"`
					Message string    `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestAbortWithError_StopsChain(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	AbortWithError(c, ErrMissingToken)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
