package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/controllers"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/iamnokia/AdminHC-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ReportIntegrationTestSuite drives the report endpoints through the real
// route guard with a pre-seeded session and a mocked upstream.
type ReportIntegrationTestSuite struct {
	suite.Suite
	router  *gin.Engine
	cfg     *config.Config
	token   string
	mockAPI *services.MockHomeCareService
}

func (suite *ReportIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")

	suite.cfg = &config.Config{
		GoEnv:           "test",
		JWTSecret:       "integration-secret",
		SessionTTLHours: 24,
	}
	config.SetConfig(suite.cfg)
}

func (suite *ReportIntegrationTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Session{}))
	config.SetDB(db)

	session := &models.Session{
		ID:           "report-session",
		AccessToken:  "upstream-at",
		RefreshToken: "upstream-rt",
		UserID:       1,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	suite.Require().NoError(db.Create(session).Error)

	token, err := middleware.MintSessionToken(session.ID, suite.cfg)
	suite.Require().NoError(err)
	suite.token = token

	suite.mockAPI = services.NewMockHomeCareService()
	suite.mockAPI.Orders = []models.RawServiceOrder{
		{ID: 1, CatID: 1, UserID: 11, Amount: 150000, PaymentStatus: models.PaymentPaid, OrderDate: "2023-01-09"},
		{ID: 2, CatID: 2, UserID: 12, Amount: 200000, PaymentStatus: models.PaymentPaid, OrderDate: "2023-02-21"},
		{ID: 3, CatID: 1, UserID: 11, Amount: 150000, PaymentStatus: models.PaymentPending, OrderDate: "2023-02-25"},
	}
	suite.mockAPI.Payments = []models.RawPayment{
		{ID: 1, CatID: 1, Amount: 150000, PaymentStatus: models.PaymentPaid, PaidAt: "2023-01-10"},
	}
	suite.mockAPI.Comments = []models.RawComment{
		{ID: 1, EmpID: 1, UserID: 11, Rating: 4, Comment: "ດີຫຼາຍ", CreatedAt: "2023-02-01"},
	}
	suite.mockAPI.SetAsMockForTesting()

	suite.router = gin.New()
	authed := suite.router.Group("/api/v1", middleware.RequireSession(suite.cfg))
	authed.GET("/reports/:tab", controllers.GetReport)
	authed.GET("/reports/:tab/export", controllers.ExportReport)
}

func (suite *ReportIntegrationTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	suite.router.ServeHTTP(w, req)
	return w
}

// TestUsageReport verifies records, series and summary come back together
func (suite *ReportIntegrationTestSuite) TestUsageReport() {
	w := suite.get("/api/v1/reports/usage")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Tab    string `json:"tab"`
			Series []struct {
				Key   string `json:"key"`
				Count int    `json:"count"`
			} `json:"series"`
			Summary struct {
				TotalRecords int     `json:"total_records"`
				TotalAmount  float64 `json:"total_amount"`
			} `json:"summary"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(suite.T(), "usage", response.Data.Tab)
	suite.Require().Len(response.Data.Series, 2)
	assert.Equal(suite.T(), "2023-01", response.Data.Series[0].Key)
	assert.Equal(suite.T(), 1, response.Data.Series[0].Count)
	assert.Equal(suite.T(), 2, response.Data.Series[1].Count)
	assert.Equal(suite.T(), 3, response.Data.Summary.TotalRecords)
	assert.Equal(suite.T(), 500000.0, response.Data.Summary.TotalAmount)
}

// TestFeedbackReport verifies the rating distribution always has 5 buckets
func (suite *ReportIntegrationTestSuite) TestFeedbackReport() {
	w := suite.get("/api/v1/reports/feedback")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Series []struct {
				Key   string `json:"key"`
				Count int    `json:"count"`
			} `json:"series"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data.Series, 5)
	assert.Equal(suite.T(), 1, response.Data.Series[3].Count, "the single 4-star review")
}

// TestCSVExport verifies the download round trip
func (suite *ReportIntegrationTestSuite) TestCSVExport() {
	w := suite.get("/api/v1/reports/payments/export")
	suite.Require().Equal(http.StatusOK, w.Code)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "report_payments.csv")

	body := w.Body.String()
	assert.True(suite.T(), strings.HasPrefix(body, utils.UTF8BOM))
	assert.Contains(suite.T(), body, "PAY-000001")
}

// TestUnknownTab verifies a tab typo is a 404, not a 500
func (suite *ReportIntegrationTestSuite) TestUnknownTab() {
	w := suite.get("/api/v1/reports/bogus")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "UNKNOWN_TAB")
}

// TestWithoutToken verifies the guard covers the report routes
func (suite *ReportIntegrationTestSuite) TestWithoutToken() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/usage", nil)
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestReportIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportIntegrationTestSuite))
}
