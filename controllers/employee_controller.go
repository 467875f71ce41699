package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
)

// RegisterEmployeeRequest is the provider registration form: personal info,
// service info, and the car section (required for the Moving category).
// Accepted as JSON or multipart form data when an avatar file is attached.
type RegisterEmployeeRequest struct {
	FirstName string  `form:"first_name" json:"first_name" binding:"required"`
	LastName  string  `form:"last_name" json:"last_name" binding:"required"`
	Email     string  `form:"email" json:"email" binding:"required,email"`
	Tel       string  `form:"tel" json:"tel" binding:"required,laophone"`
	Address   string  `form:"address" json:"address" binding:"required"`
	City      string  `form:"city" json:"city" binding:"required"`
	Gender    string  `form:"gender" json:"gender" binding:"required,oneof=male female other"`
	CatID     int     `form:"cat_id" json:"cat_id" binding:"required,gt=0"`
	Price     float64 `form:"price" json:"price" binding:"required,gt=0"`

	CarBrand     string `form:"car_brand" json:"car_brand"`
	CarModel     string `form:"car_model" json:"car_model"`
	LicensePlate string `form:"license_plate" json:"license_plate"`
}

// UpdateEmployeeRequest is the inline-edit form from the provider detail dialog
type UpdateEmployeeRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Tel       string  `json:"tel" binding:"required,laophone"`
	Address   string  `json:"address" binding:"required"`
	City      string  `json:"city" binding:"required"`
	Gender    string  `json:"gender" binding:"omitempty,oneof=male female other"`
	CatID     int     `json:"cat_id" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`

	CarBrand     string `json:"car_brand"`
	CarModel     string `json:"car_model"`
	LicensePlate string `json:"license_plate"`
}

// UpdateStatusRequest is the availability switch payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// ListEmployees handles GET /api/v1/employees - the provider directory.
// Supports a category tab filter (catId), free-text search (q) across
// name/category/city/address/price/status/car fields, and the sample-data
// fallback (sample=true).
func ListEmployees(c *gin.Context) {
	if c.Query("sample") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    filterEmployees(services.SampleEmployees(), c),
			"sample":  true,
		})
		return
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	api := services.GetHomeCareService()
	employees, err := api.ListEmployees(session.AccessToken, services.ReportQuery{})
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	cars, err := api.ListCars(session.AccessToken)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	employees = models.AttachCars(employees, cars)

	// Rating stars come from the feedback feed; a failure there falls back
	// to the default rating instead of failing the whole directory.
	rawComments, err := api.FetchComments(session.AccessToken, services.ReportQuery{})
	if err != nil {
		log.Printf("Failed to fetch ratings for directory: %v", err)
		rawComments = nil
	}
	models.ApplyRatings(employees, services.AverageRatings(services.MapComments(rawComments)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    filterEmployees(employees, c),
	})
}

// filterEmployees applies the catId tab and q search filters
func filterEmployees(employees []models.Employee, c *gin.Context) []models.Employee {
	catID, _ := strconv.Atoi(c.Query("catId"))
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtered := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if catID > 0 && employee.CatID != catID {
			continue
		}
		if query != "" && !matchesSearch(employee, query) {
			continue
		}
		filtered = append(filtered, employee)
	}
	return filtered
}

func matchesSearch(e models.Employee, query string) bool {
	fields := []string{
		e.FirstName,
		e.LastName,
		e.CatName,
		models.CategoryLabel(e.CatID),
		e.City,
		e.Address,
		fmt.Sprintf("%.0f", e.Price),
		e.Status,
	}
	if e.Car != nil {
		fields = append(fields, e.Car.Brand, e.Car.Model, e.Car.LicensePlate)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// RegisterEmployee handles POST /api/v1/employees - the provider
// registration form. Accepts JSON, or multipart when an avatar is attached;
// the avatar is stored through the image service and its URL forwarded
// upstream with the create call.
func RegisterEmployee(c *gin.Context) {
	var req RegisterEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ກະລຸນາກວດຄືນຂໍ້ມູນທີ່ປ້ອນ",
				"details": err.Error(),
			},
		})
		return
	}

	// The car section is forced for Moving-category registrations
	if models.RequiresCar(req.CatID) && (req.CarBrand == "" || req.LicensePlate == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CAR_REQUIRED",
				"message": "ປະເພດແກ່ເຄື່ອງຕ້ອງມີຂໍ້ມູນລົດ",
			},
		})
		return
	}

	session, err := middleware.GetSession(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	avatarURL := ""
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		key, err := services.GetImageService().UploadImage(fileHeader, services.ImageKindAvatar)
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
		if avatarURL, err = services.GetImageService().GetImageURL(key); err != nil {
			log.Printf("Failed to resolve avatar URL for %s: %v", key, err)
		}
	}

	api := services.GetHomeCareService()
	payload := services.EmployeePayload{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Tel:       req.Tel,
		Address:   req.Address,
		City:      req.City,
		Gender:    req.Gender,
		CatID:     req.CatID,
		Price:     req.Price,
		Status:    models.StatusActive,
		Avatar:    avatarURL,
	}
	if err := api.CreateEmployee(session.AccessToken, payload); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "ລົງທະບຽນຜູ້ໃຫ້ບໍລິການສຳເລັດແລ້ວ",
	})
}

// UpdateEmployee handles PUT /api/v1/employees/:id - the inline edit dialog.
// Saving a Moving-category provider with no existing car creates one;
// otherwise the existing car record is updated.
func UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadID(c)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ກະລຸນາກວດຄືນຂໍ້ມູນທີ່ປ້ອນ",
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
	payload := services.EmployeePayload{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Tel:       req.Tel,
		Address:   req.Address,
		City:      req.City,
		Gender:    req.Gender,
		CatID:     req.CatID,
		Price:     req.Price,
	}
	if err := api.UpdateEmployee(session.AccessToken, id, payload); err != nil {
		respondUpstreamError(c, err)
		return
	}

	if models.RequiresCar(req.CatID) && req.CarBrand != "" {
		if err := upsertCar(api, session.AccessToken, id, req); err != nil {
			respondUpstreamError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ແກ້ໄຂຂໍ້ມູນສຳເລັດແລ້ວ",
	})
}

func upsertCar(api services.HomeCareAPI, token string, empID int, req UpdateEmployeeRequest) error {
	cars, err := api.ListCars(token)
	if err != nil {
		return err
	}

	payload := services.CarPayload{
		EmpID:        empID,
		Brand:        req.CarBrand,
		Model:        req.CarModel,
		LicensePlate: req.LicensePlate,
	}
	for _, car := range cars {
		if car.EmpID == empID {
			return api.UpdateCar(token, car.ID, payload)
		}
	}
	return api.CreateCar(token, payload)
}

// UpdateEmployeeStatus handles PUT /api/v1/employees/:id/status - the
// availability switch. On failure the upstream keeps the prior state and the
// localized message is surfaced for the rollback snackbar.
func UpdateEmployeeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadID(c)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ສະຖານະຕ້ອງເປັນ active ຫຼື inactive",
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
	if err := api.UpdateEmployeeStatus(session.AccessToken, id, req.Status); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":     id,
			"status": req.Status,
		},
	})
}

// DeleteEmployee handles DELETE /api/v1/employees/:id
func DeleteEmployee(c *gin.Context) {
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
	if err := api.DeleteEmployee(session.AccessToken, id); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ລຶບຜູ້ໃຫ້ບໍລິການແລ້ວ",
	})
}

func respondUpstreamError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), gin.H{
		"success": false,
		"error": gin.H{
			"code":    services.ErrorCode(err),
			"message": err.Error(),
		},
	})
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "ກະລຸນາເຂົ້າສູ່ລະບົບໃໝ່",
		},
	})
}

func respondBadID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_ID",
			"message": "ລະຫັດບໍ່ຖືກຕ້ອງ",
		},
	})
}
