package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/iamnokia/AdminHC-sub000/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Shared controller test plumbing: mocks behind the service singletons, an
// in-memory session store, and a stub that plants a logged-in session the way
// the route guard would.

func setupControllerTest(t *testing.T) (*services.MockHomeCareService, *services.MockImageService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, utils.RegisterCustomValidations(v))
	}

	config.SetConfig(&config.Config{
		GoEnv:           "test",
		JWTSecret:       "test-secret",
		SessionTTLHours: 24,
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))
	config.SetDB(db)

	mockAPI := services.NewMockHomeCareService()
	mockAPI.SetAsMockForTesting()

	mockImages := services.NewMockImageService()
	mockImages.SetAsMockForTesting()

	services.SetStatusTracker(services.NewStatusTracker())

	return mockAPI, mockImages
}

// sessionStub plants a logged-in session in the request context
func sessionStub() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", &models.Session{
			ID:          "sess-test",
			AccessToken: "upstream-token",
			UserID:      1,
			UserName:    "Admin User",
			Email:       "admin@homecare.la",
			ExpiresAt:   time.Now().Add(time.Hour),
		})
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performMultipart(router *gin.Engine, method, path string, fields map[string]string, fileField, filename string, fileContent []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		part.Write(fileContent)
	}
	writer.Close()

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed
}
