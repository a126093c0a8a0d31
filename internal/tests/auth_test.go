// internal/tests/auth_test.go
package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthTestSuite) SetupTest() {
	suite.router, _ = newTestRouter()
}

func (suite *AuthTestSuite) TestLoginSuccess() {
	w, resp := doRequest(suite.router, http.MethodPost, "/v1/auth/login", map[string]interface{}{
		"username": "admin",
		"password": "admin",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), resp.Success)

	var data map[string]string
	assert.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "/v1/dashboard?tab=products", data["redirect"])
}

func (suite *AuthTestSuite) TestLoginRejected() {
	for _, creds := range []map[string]interface{}{
		{"username": "admin", "password": "wrong"},
		{"username": "", "password": ""},
		{},
	} {
		w, resp := doRequest(suite.router, http.MethodPost, "/v1/auth/login", creds)

		assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
		assert.False(suite.T(), resp.Success)
		assert.Equal(suite.T(), "Invalid credentials!", resp.Error.Message)
	}
}

func (suite *AuthTestSuite) TestLoginMalformedBody() {
	w, resp := doRequest(suite.router, http.MethodPost, "/v1/auth/login", "not an object")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), resp.Success)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
