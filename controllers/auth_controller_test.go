package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/auth/login", Login)
	router.GET("/api/v1/auth/me", sessionStub(), GetMe)
	router.POST("/api/v1/auth/logout", sessionStub(), Logout)
	return router
}

func TestLogin_Success(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.LoginResult = &services.LoginResult{AccessToken: "at-1", RefreshToken: "rt-1"}
	mockAPI.Profile = &services.Profile{ID: 7, FirstName: "Admin", LastName: "User", Email: "admin@homecare.la"}

	w := performJSON(authRouter(), http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@homecare.la",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "admin@homecare.la", user["email"])
	assert.Equal(t, "Admin User", user["user_name"])

	var count int64
	config.GetDB().Model(&models.Session{}).Count(&count)
	assert.EqualValues(t, 1, count, "login persists a session row")
}

func TestLogin_ValidationError(t *testing.T) {
	setupControllerTest(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "secret"}},
		{"missing password", gin.H{"email": "admin@homecare.la"}},
		{"invalid email", gin.H{"email": "not-an-email", "password": "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(authRouter(), http.MethodPost, "/api/v1/auth/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		})
	}
}

func TestLogin_UpstreamRejection(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Err = errors.New("upstream said no")

	w := performJSON(authRouter(), http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@homecare.la",
		"password": "wrong",
	})

	// Any upstream failure is collapsed into one generic credential message
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "LOGIN_FAILED")
	assert.Contains(t, w.Body.String(), "ອີເມວ ຫຼື ລະຫັດຜ່ານບໍ່ຖືກຕ້ອງ")
	assert.NotContains(t, w.Body.String(), "upstream said no")
}

func TestGetMe(t *testing.T) {
	setupControllerTest(t)

	w := performJSON(authRouter(), http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@homecare.la")
}

func TestGetMe_NoSession(t *testing.T) {
	setupControllerTest(t)

	router := gin.New()
	router.GET("/api/v1/auth/me", GetMe)

	w := performJSON(router, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_DeletesSession(t *testing.T) {
	setupControllerTest(t)

	session := &models.Session{ID: "sess-test", AccessToken: "at", RefreshToken: "rt"}
	require.NoError(t, config.GetDB().Create(session).Error)

	w := performJSON(authRouter(), http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ອອກຈາກລະບົບແລ້ວ")

	var count int64
	config.GetDB().Model(&models.Session{}).Where("id = ?", "sess-test").Count(&count)
	assert.Zero(t, count)
}
