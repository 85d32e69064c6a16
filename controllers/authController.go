package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shreeambika/easyshop-api/initializers"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/services"
	"github.com/shreeambika/easyshop-api/utils"
)

const (
	// Standard response messages
	msgInvalidInput        = "All fields are required"
	msgPhoneRegistered     = "Phone number already registered"
	msgInvalidCredentials  = "Invalid phone or password"
	msgInternalServerError = "Internal server error"
	msgUserNotFound        = "User not found"
	msgUserRegistered      = "User registered successfully"
	msgLoginSuccess        = "Login successful"
	msgOTPSent             = "OTP sent successfully"
	msgInvalidOTP          = "Invalid or expired OTP"
	msgPasswordReset       = "Password reset successfully"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

func newAuthService() *services.AuthService {
	return services.NewAuthService(
		repository.NewUserRepository(initializers.DB),
		utils.DefaultOTPStore(),
	)
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"phone":   user.Phone,
		"name":    user.Name,
		"role":    "user",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func isOTPError(err error) bool {
	return errors.Is(err, utils.ErrOTPInvalid) ||
		errors.Is(err, utils.ErrOTPExpired) ||
		errors.Is(err, utils.ErrOTPAttempts)
}

// Register handles customer registration
func Register(ctx *gin.Context) {
	var signUpData models.User
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := newAuthService().Register(signUpData)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgPhoneRegistered)
			return
		}
		log.Println("User registration error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgUserRegistered,
		"user":    user.Profile(),
	})
}

// Login handles customer authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone and password are required")
		return
	}

	user, err := newAuthService().Login(loginData.Phone, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Println("Database error during login:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(*user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"user":    user.Profile(),
		"token":   tokenString,
	})
}

// ForgotPassword issues a simulated OTP for the given phone or email. The
// code is logged server-side and echoed in the response body; there is no
// real delivery channel.
func ForgotPassword(ctx *gin.Context) {
	var body struct {
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone or Email is required")
		return
	}

	key, err := models.NewLookupKey(body.Phone, body.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone or Email is required")
		return
	}

	otp, err := newAuthService().IssueResetOTP(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
			return
		}
		log.Println("OTP issue error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgOTPSent,
		"otp":     otp,
	})
}

// ResetPassword verifies and consumes the OTP issued by ForgotPassword, then
// re-hashes the user's password.
func ResetPassword(ctx *gin.Context) {
	var body struct {
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone/Email, OTP and new password are required")
		return
	}

	key, err := models.NewLookupKey(body.Phone, body.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Phone or Email is required")
		return
	}

	if err := newAuthService().ResetPassword(ctx.Request.Context(), key, body.OTP, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		case isOTPError(err):
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidOTP)
		default:
			log.Println("Error resetting password:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgPasswordReset})
}
