package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
)

// RegisterCarRequest is the standalone vehicle registration form. JSON, or
// multipart when a photo is attached.
type RegisterCarRequest struct {
	EmpID        int    `form:"emp_id" json:"emp_id" binding:"required,gt=0"`
	Brand        string `form:"car_brand" json:"car_brand" binding:"required"`
	Model        string `form:"car_model" json:"car_model" binding:"required"`
	LicensePlate string `form:"license_plate" json:"license_plate" binding:"required"`
}

// CheckCarEligibility handles GET /api/v1/employees/:id/car-eligibility.
// The standalone car-registration flow calls this before showing the form:
// the provider must be in the Moving category and must not already have a
// vehicle. Ineligibility is a blocking condition, not a form error.
func CheckCarEligibility(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadID(c)
		return
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	api := services.GetHomeCareService()
	employee, err := api.GetEmployee(session.AccessToken, id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	if !models.RequiresCar(employee.CatID) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"eligible": false,
				"reason":   "ສະເພາະຜູ້ໃຫ້ບໍລິການປະເພດແກ່ເຄື່ອງເທົ່ານັ້ນ",
			},
		})
		return
	}

	cars, err := api.ListCars(session.AccessToken)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	for _, car := range cars {
		if car.EmpID == id {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": gin.H{
					"eligible": false,
					"reason":   "ຜູ້ໃຫ້ບໍລິການນີ້ມີລົດລົງທະບຽນແລ້ວ",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"eligible": true,
		},
	})
}

// RegisterCar handles POST /api/v1/cars - re-checks eligibility server-side
// before creating the vehicle record upstream
func RegisterCar(c *gin.Context) {
	var req RegisterCarRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ກະລຸນາກວດຄືນຂໍ້ມູນລົດ",
				"details": err.Error(),
			},
		})
		return
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	api := services.GetHomeCareService()
	employee, err := api.GetEmployee(session.AccessToken, req.EmpID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if !models.RequiresCar(employee.CatID) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_ELIGIBLE",
				"message": "ສະເພາະຜູ້ໃຫ້ບໍລິການປະເພດແກ່ເຄື່ອງເທົ່ານັ້ນ",
			},
		})
		return
	}

	cars, err := api.ListCars(session.AccessToken)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	for _, car := range cars {
		if car.EmpID == req.EmpID {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CAR_EXISTS",
					"message": "ຜູ້ໃຫ້ບໍລິການນີ້ມີລົດລົງທະບຽນແລ້ວ",
				},
			})
			return
		}
	}

	imageURL := ""
	if fileHeader, err := c.FormFile("car_image"); err == nil && fileHeader != nil {
		key, err := services.GetImageService().UploadImage(fileHeader, services.ImageKindVehicle)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_ERROR",
					"message": "ບໍ່ສາມາດອັບໂຫຼດຮູບພາບໄດ້",
					"details": err.Error(),
				},
			})
			return
		}
		if imageURL, err = services.GetImageService().GetImageURL(key); err != nil {
			log.Printf("Failed to resolve car image URL for %s: %v", key, err)
		}
	}

	payload := services.CarPayload{
		EmpID:        req.EmpID,
		Brand:        req.Brand,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Image:        imageURL,
	}
	if err := api.CreateCar(session.AccessToken, payload); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "ລົງທະບຽນລົດສຳເລັດແລ້ວ",
	})
}

// ListCategories handles GET /api/v1/categories - the static category set,
// served from the upstream with the local table as offline fallback
func ListCategories(c *gin.Context) {
	if c.Query("sample") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    models.KnownCategories(),
			"sample":  true,
		})
		return
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	categories, err := services.GetHomeCareService().ListCategories(session.AccessToken)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}
