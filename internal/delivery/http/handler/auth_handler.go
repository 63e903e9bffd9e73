package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"github.com/luis-epic/el-point-ai/internal/pkg/utils"
	"github.com/luis-epic/el-point-ai/internal/pkg/validator"
	"github.com/luis-epic/el-point-ai/internal/usecase"
	"github.com/luis-epic/el-point-ai/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - обработчик аутентификации и сессии
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// SignIn godoc
// @Summary Вход пользователя
// @Description Выполняет вход. В локальном режиме принимается любой валидный email, в удалённом проверяются учётные данные и выдаётся токен.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "Учётные данные"
// @Success 200 {object} utils.SuccessResponse{data=domain.Session}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	session, err := h.authUC.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, session, nil)
}

// SignUp godoc
// @Summary Регистрация пользователя
// @Description Регистрирует пользователя и выполняет вход. В локальном режиме не отличается от входа.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "Учётные данные"
// @Success 200 {object} utils.SuccessResponse{data=domain.Session}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	session, err := h.authUC.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, session, nil)
}

// SignOut godoc
// @Summary Выход пользователя
// @Description Сбрасывает сессию. Всегда успешен.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	h.authUC.SignOut(c.Context())
	return utils.SendSuccess(c, nil, nil)
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает профиль текущей сессии или null
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.UserProfile}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.authUC.CurrentUser(), nil)
}
