package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/models"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	tokenLifetime = 30 * 24 * time.Hour

	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "User already exists. Please log in."
	msgUserCreated           = "User registered successfully!"
	msgUserNotFound          = "User not found. Please sign up."
	msgInvalidCredentials    = "Invalid credentials. Wrong password."
	msgFailedToHashPassword  = "failed to hash password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"authority": user.Authority,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(tokenLifetime).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(data models.SignupData) (bool, error) {
	var existing models.User
	result := initializers.DB.
		Where("email = ? OR phone = ? OR username = ?", data.Email, data.Phone, data.Username).
		Limit(1).
		Find(&existing)
	return result.RowsAffected > 0, result.Error
}

func findUserByIdentifier(identifier string) (models.User, error) {
	var user models.User
	result := initializers.DB.
		Where("email = ? OR phone = ? OR username = ?", identifier, identifier, identifier).
		First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signUpData)
	if err != nil {
		initializers.Logger.Error("database error during user check", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		initializers.Logger.Error("password hashing error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		FirstName: signUpData.FirstName,
		LastName:  signUpData.LastName,
		Username:  signUpData.Username,
		Phone:     signUpData.Phone,
		Email:     signUpData.Email,
		Password:  hashedPassword,
		Authority: models.AuthorityUser,
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		initializers.Logger.Error("user creation error", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	initializers.Logger.Info("user registered", zap.Uint("user_id", user.ID))
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByIdentifier(loginData.Identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		initializers.Logger.Error("database error during login", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		initializers.Logger.Error("JWT generation error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token":     tokenString,
		"authority": user.Authority,
	})
}
