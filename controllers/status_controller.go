package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
)

// UpdateRequestStep is the tracker edit-dialog payload: move the request to
// a step and optionally reassign staff
type UpdateRequestStep struct {
	Step    *int `json:"step" binding:"required"`
	StaffID int  `json:"staff_id"`
}

// ListServiceRequests handles GET /api/v1/status/requests - the tracker
// board with each request's pipeline position and derived completed steps
func ListServiceRequests(c *gin.Context) {
	requests := services.GetStatusTracker().Requests()

	type requestView struct {
		models.ServiceRequest
		CompletedSteps []int `json:"completed_steps"`
	}
	views := make([]requestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, requestView{ServiceRequest: r, CompletedSteps: r.CompletedSteps()})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"steps":    models.PipelineSteps,
			"requests": views,
		},
	})
}

// ListStaff handles GET /api/v1/status/staff - the availability cards
func ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.GetStatusTracker().Staff(),
	})
}

// UpdateServiceRequest handles PUT /api/v1/status/requests/:id - moves a
// request's step and reassigns staff. State is in-memory only.
func UpdateServiceRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadID(c)
		return
	}

	var req UpdateRequestStep
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ກະລຸນາລະບຸຂັ້ນຕອນ",
			},
		})
		return
	}

	updated, err := services.GetStatusTracker().UpdateRequest(id, *req.Step, req.StaffID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_UPDATE",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"request":         updated,
			"completed_steps": updated.CompletedSteps(),
		},
	})
}
