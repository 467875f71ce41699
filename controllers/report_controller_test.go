package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/iamnokia/AdminHC-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportRouter() *gin.Engine {
	router := gin.New()
	authed := router.Group("/api/v1", sessionStub())
	authed.GET("/reports/:tab", GetReport)
	authed.GET("/reports/:tab/export", ExportReport)
	return router
}

func TestGetReport_Usage(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Orders = []models.RawServiceOrder{
		{ID: 1, CatID: 1, UserID: 11, Amount: 100, OrderDate: "2023-01-09"},
		{ID: 2, CatID: 2, UserID: 12, Amount: 200, OrderDate: "2023-02-21"},
	}

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/usage", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "usage", data["tab"])
	assert.Len(t, data["series"].([]any), 2)

	summary := data["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["total_records"])
}

func TestGetReport_UnknownTab(t *testing.T) {
	setupControllerTest(t)

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/nonsense", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_TAB")
}

func TestGetReport_Sample(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Err = assert.AnError

	for _, tab := range services.ReportTabs {
		w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/"+tab+"?sample=true", nil)
		require.Equal(t, http.StatusOK, w.Code, tab)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, true, data["sample"], tab)
	}
}

func TestGetReport_UpstreamError(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Err = assert.AnError

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/usage", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExportReport_CSV(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Payments = []models.RawPayment{
		{ID: 1, CatID: 1, Amount: 150000, PaymentStatus: models.PaymentPaid, PaidAt: "2023-01-10"},
		{ID: 2, CatID: 2, Amount: 200000, PaymentStatus: models.PaymentPending, PaidAt: "2023-02-11"},
	}

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/payments/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, `attachment; filename="report_payments.csv"`)
	assert.Contains(t, disposition, "filename*=UTF-8''")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, utils.UTF8BOM), "CSV starts with the UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(body, "\r\n"), "\r\n")
	require.Len(t, lines, 3, "header plus one line per payment")
	assert.Contains(t, lines[0], "ເລກອ້າງອີງ")
	assert.Contains(t, lines[1], "PAY-000001")
}

func TestExportReport_Print(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Orders = []models.RawServiceOrder{
		{ID: 1, CatID: 1, Amount: 100, OrderDate: "2023-01-09"},
	}

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/usage/export?format=print", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Contains(t, data["title"], "ລາຍງານ usage")
}

func TestExportReport_UnknownTab(t *testing.T) {
	setupControllerTest(t)

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/nonsense/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportReport_SampleData(t *testing.T) {
	mockAPI, _ := setupControllerTest(t)
	mockAPI.Err = assert.AnError

	w := performJSON(reportRouter(), http.MethodGet, "/api/v1/reports/feedback/export?sample=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ຄະແນນ")
}
