package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
)

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login - forwards credentials upstream,
// persists the returned tokens as a session, and issues the dashboard token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ກະລຸນາປ້ອນອີເມວ ແລະ ລະຫັດຜ່ານໃຫ້ຖືກຕ້ອງ",
			},
		})
		return
	}

	api := services.GetHomeCareService()
	result, err := api.Login(req.Email, req.Password)
	if err != nil {
		// Any upstream failure at login surfaces as one generic message
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LOGIN_FAILED",
				"message": "ອີເມວ ຫຼື ລະຫັດຜ່ານບໍ່ຖືກຕ້ອງ",
			},
		})
		return
	}

	profile, err := api.FetchProfile(result.AccessToken)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{
			"success": false,
			"error": gin.H{
				"code":    services.ErrorCode(err),
				"message": err.Error(),
			},
		})
		return
	}

	cfg := config.GetConfig()
	session := models.Session{
		ID:           uuid.NewString(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		UserID:       profile.ID,
		UserName:     profile.FirstName + " " + profile.LastName,
		Email:        profile.Email,
		Avatar:       profile.Avatar,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.SessionTTLHours) * time.Hour),
	}
	if err := config.GetDB().Create(&session).Error; err != nil {
		log.Printf("Failed to persist session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SESSION_ERROR",
				"message": "ເຊີບເວີເກີດຂໍ້ຜິດພາດ, ກະລຸນາລອງໃໝ່ພາຍຫຼັງ",
			},
		})
		return
	}

	token, err := middleware.MintSessionToken(session.ID, cfg)
	if err != nil {
		log.Printf("Failed to mint session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SESSION_ERROR",
				"message": "ເຊີບເວີເກີດຂໍ້ຜິດພາດ, ກະລຸນາລອງໃໝ່ພາຍຫຼັງ",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  session,
		},
	})
}

// GetMe handles GET /api/v1/auth/me - returns the logged-in admin's profile
func GetMe(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "ກະລຸນາເຂົ້າສູ່ລະບົບໃໝ່",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

// Logout handles POST /api/v1/auth/logout - deletes the session row
func Logout(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "ກະລຸນາເຂົ້າສູ່ລະບົບໃໝ່",
			},
		})
		return
	}

	if err := config.GetDB().Delete(&models.Session{}, "id = ?", session.ID).Error; err != nil {
		log.Printf("Failed to delete session %s: %v", session.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ອອກຈາກລະບົບແລ້ວ",
	})
}
