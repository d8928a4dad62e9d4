package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/notifications"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("Failed to hash password")
	}

	newUser := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest("Email already exists")
		}
		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
		if count > 0 {
			return utils.BadRequest("Email already exists")
		}
		return utils.Internal("Failed to create user")
	}

	go notifications.SendEmail(newUser.Name, newUser.Email, "Welcome to RentRealm!", "<h1>Welcome!</h1><p>Thank you for registering. Start browsing properties today.</p>")

	return utils.Respond(c, fiber.StatusCreated, UserResponse{
		ID:        newUser.ID.String(),
		Name:      newUser.Name,
		Email:     newUser.Email,
		Role:      newUser.Role,
		CreatedAt: newUser.CreatedAt,
	})
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return utils.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.Unauthorized("Invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return utils.Internal("Failed to create token")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"token": t,
		"user": UserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	})
}

func GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.NotFound("User not found")
	}

	return utils.Respond(c, fiber.StatusOK, user)
}

type UpdateProfileRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=2"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.NotFound("User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.Internal("Failed to update profile")
	}

	return utils.Respond(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	type Request struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	userID := middleware.UserID(c)
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.NotFound("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return utils.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("Failed to hash new password")
	}

	user.Password = string(hashedPassword)
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.Internal("Failed to change password")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Password changed successfully"})
}

func ForgotPassword(c *fiber.Ctx) error {
	type Request struct {
		Email string `json:"email" validate:"required,email"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	// Same response whether or not the account exists.
	neutral := fiber.Map{"message": "If an account with that email exists, a password reset link has been sent."}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return utils.Respond(c, fiber.StatusOK, neutral)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.Internal("Failed to generate reset token")
	}
	token := hex.EncodeToString(tokenBytes)

	expiration := time.Now().Add(24 * time.Hour)
	user.ResetPasswordToken = &token
	user.ResetPasswordTokenExpiresAt = &expiration

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.Internal("Failed to save reset token")
	}

	go notifications.SendEmail(user.Name, user.Email, "Your Password Reset Link", notifications.ResetPasswordEmail(token))

	return utils.Respond(c, fiber.StatusOK, neutral)
}

func ResetPassword(c *fiber.Ctx) error {
	type Request struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var user models.User
	if err := database.DB.Where("reset_password_token = ?", req.Token).First(&user).Error; err != nil {
		return utils.BadRequest("Invalid or expired reset token")
	}

	if user.ResetPasswordTokenExpiresAt == nil || user.ResetPasswordTokenExpiresAt.Before(time.Now()) {
		user.ResetPasswordToken = nil
		user.ResetPasswordTokenExpiresAt = nil
		database.DB.Save(&user)
		return utils.BadRequest("Invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("Failed to hash new password")
	}

	user.Password = string(hashedPassword)
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpiresAt = nil
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.Internal("Failed to reset password")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Password reset successfully"})
}
