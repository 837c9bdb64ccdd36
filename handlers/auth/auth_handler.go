package handlers

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler kayıt, giriş ve e-posta doğrulama uçlarını yönetir.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

type registerRequest struct {
	Name                 string `json:"name" form:"name"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type emailRequest struct {
	Email string `json:"email" form:"email"`
}

type verifyRequest struct {
	Email string `json:"email" form:"email"`
	Code  string `json:"code" form:"code"`
}

func userJSON(id uint, name, email string) fiber.Map {
	return fiber.Map{"id": id, "name": name, "email": email}
}

// Register (POST /api/register) yeni hesap oluşturur.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body."})
	}

	user, err := h.service.Register(c.UserContext(), req.Name, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthEmailTaken):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "The email has already been taken."})
		case errors.Is(err, services.ErrAuthInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "The given data was invalid."})
		default:
			configslog.Log.Error("Register Error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Registration failed."})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    userJSON(user.ID, user.Name, user.Email),
		"message": "Registered successfully",
	})
}

// Login (POST /api/login) kimlik bilgilerini doğrular.
// Bilinmeyen e-posta ile hatalı parola aynı yanıtı alır.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body."})
	}

	user, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthInvalidCredentials) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "The provided credentials are incorrect."})
		}
		configslog.Log.Error("Login Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed."})
	}
	return c.JSON(fiber.Map{
		"user":    userJSON(user.ID, user.Name, user.Email),
		"message": "Logged in successfully",
	})
}

// SendVerificationCode (POST /api/send-verification-code) 6 haneli kod üretir.
// Gerçek bir posta servisi bağlı olmadığından kod yanıt gövdesinde döner;
// istemci kodu kullanıcıya gösterir.
func (h *AuthHandler) SendVerificationCode(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body."})
	}

	code, err := h.service.SendVerificationCode(c.UserContext(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthMailDomainRejected):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Only gmail.com addresses are allowed."})
		case errors.Is(err, services.ErrAuthInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "The given data was invalid."})
		default:
			configslog.Log.Error("SendVerificationCode Error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to send verification code."})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Verification code sent",
		"code":    code,
	})
}

// VerifyCode (POST /api/verify-code) kodu tek kullanımlık olarak doğrular.
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body."})
	}

	if err := h.service.VerifyCode(c.UserContext(), req.Email, req.Code); err != nil {
		if errors.Is(err, services.ErrAuthInvalidCode) || errors.Is(err, services.ErrAuthInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid verification code"})
		}
		configslog.Log.Error("VerifyCode Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Verification failed."})
	}
	return c.JSON(fiber.Map{"message": "Email verified successfully"})
}
