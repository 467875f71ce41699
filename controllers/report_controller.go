package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/iamnokia/AdminHC-sub000/utils"
)

func reportQueryFrom(c *gin.Context) services.ReportQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	catID, _ := strconv.Atoi(c.Query("catId"))
	return services.ReportQuery{
		Page:      page,
		Limit:     limit,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		CatID:     catID,
		Status:    c.Query("status"),
	}
}

// buildReport resolves the report for a tab, honoring the sample-data
// fallback. A nil report with nil error means the tab name is unknown.
func buildReport(c *gin.Context) (*services.Report, error) {
	tab := c.Param("tab")

	if c.Query("sample") == "true" {
		return services.SampleReport(tab), nil
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		return nil, err
	}

	reports := services.NewReportService(services.GetHomeCareService())
	return reports.Build(tab, session.AccessToken, reportQueryFrom(c))
}

// GetReport handles GET /api/v1/reports/:tab - one report tab's records,
// chart series and summary. Each tab owns independent state; a failure here
// does not affect the others.
func GetReport(c *gin.Context) {
	report, err := buildReport(c)
	if err != nil {
		if _, ok := err.(*middleware.AuthError); ok {
			respondUnauthorized(c)
			return
		}
		respondUpstreamError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_TAB",
				"message": "ບໍ່ພົບລາຍງານທີ່ຮ້ອງຂໍ",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// ExportReport handles GET /api/v1/reports/:tab/export - downloads the tab's
// current record set as CSV (UTF-8 BOM, CRLF, translated header). With
// format=print it instead returns the document title the client should swap
// in while triggering the print dialog.
func ExportReport(c *gin.Context) {
	report, err := buildReport(c)
	if err != nil {
		if _, ok := err.(*middleware.AuthError); ok {
			respondUnauthorized(c)
			return
		}
		respondUpstreamError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_TAB",
				"message": "ບໍ່ພົບລາຍງານທີ່ຮ້ອງຂໍ",
			},
		})
		return
	}

	if c.Query("format") == "print" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"title": fmt.Sprintf("ລາຍງານ %s %s", report.Tab, time.Now().Format("2006-01-02")),
			},
		})
		return
	}

	header, rows := services.ExportRows(report)
	if header == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": "ບໍ່ສາມາດສ້າງໄຟລ໌ CSV ໄດ້",
			},
		})
		return
	}

	csvText := utils.BuildCSV(header, rows)
	filename := utils.ExportFilename(report.Tab, time.Now())

	// RFC 5987 encoding so the Lao filename survives the download dialog
	c.Header("Content-Disposition", fmt.Sprintf(
		"attachment; filename=\"report_%s.csv\"; filename*=UTF-8''%s",
		report.Tab, url.PathEscape(filename)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
