package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shreeambika/easyshop-api/initializers"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// Admin credentials come from the environment: ADMIN_PHONE plus a bcrypt
// hash in ADMIN_PASSWORD_HASH.
func adminCredentialsMatch(phone, password string) bool {
	configuredPhone := os.Getenv("ADMIN_PHONE")
	configuredHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if configuredPhone == "" || configuredHash == "" {
		return false
	}
	if phone != configuredPhone {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(configuredHash), []byte(password)) == nil
}

func generateAdminJWT(phone string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"phone": phone,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// AdminLogin is step one of the admin gate: phone + password, answered with
// a simulated OTP.
func AdminLogin(ctx *gin.Context) {
	var body struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone and password are required")
		return
	}

	if !adminCredentialsMatch(body.Phone, body.Password) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	otp, err := utils.DefaultOTPStore().Issue(ctx.Request.Context(), "admin:"+body.Phone)
	if err != nil {
		log.Println("OTP issue error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	log.Printf("[SIMULATION] Admin OTP for %s is: %s", body.Phone, otp)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgOTPSent,
		"otp":     otp,
	})
}

// AdminVerifyOTP is step two: a valid code yields an admin token.
func AdminVerifyOTP(ctx *gin.Context) {
	var body struct {
		Phone string `json:"phone" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone and OTP are required")
		return
	}

	if body.Phone != os.Getenv("ADMIN_PHONE") {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidOTP)
		return
	}

	if err := utils.DefaultOTPStore().Verify(ctx.Request.Context(), "admin:"+body.Phone, body.OTP); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidOTP)
		return
	}

	token, err := generateAdminJWT(body.Phone)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Admin verified successfully",
		"token":   token,
	})
}

// GetUsers lists registered customers. Admin only.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := initializers.DB.Order("created_at DESC").Find(&users); result.Error != nil {
		log.Println("Failed to fetch users:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}

	ctx.JSON(http.StatusOK, profiles)
}

// GetUPISetting returns the configured receiving UPI ID. Admin only.
func GetUPISetting(ctx *gin.Context) {
	value, err := repository.NewSettingRepository(initializers.DB).Get(models.SettingUPIID)
	if err != nil {
		log.Println("Failed to read UPI setting:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read UPI setting")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"upiId": value})
}

// UpdateUPISetting stores the receiving UPI ID. Admin only.
func UpdateUPISetting(ctx *gin.Context) {
	var body struct {
		UPIID string `json:"upiId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "upiId is required")
		return
	}

	if err := repository.NewSettingRepository(initializers.DB).Set(models.SettingUPIID, body.UPIID); err != nil {
		log.Println("Failed to update UPI setting:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update UPI setting")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "UPI ID updated successfully"})
}

// GetBanner returns the promotional banner. Public.
func GetBanner(ctx *gin.Context) {
	var banner models.Banner
	if result := initializers.DB.First(&banner, 1); result.Error != nil {
		log.Println("Failed to fetch banner:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch banner")
		return
	}

	ctx.JSON(http.StatusOK, banner)
}

// UpdateBanner replaces the promotional banner text, color and visibility.
// Admin only.
func UpdateBanner(ctx *gin.Context) {
	var body struct {
		Text    string `json:"text"`
		Color   string `json:"color"`
		Visible bool   `json:"visible"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := initializers.DB.Model(&models.Banner{}).
		Where("id = ?", 1).
		Updates(map[string]any{
			"text":    body.Text,
			"color":   body.Color,
			"visible": body.Visible,
		})
	if result.Error != nil {
		log.Println("Failed to update banner:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update banner")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Banner updated successfully"})
}
