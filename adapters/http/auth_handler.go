package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/dev-network/internal/application/usecase/auth"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type AuthHandler struct {
	registerUseCase    *authUC.RegisterUseCase
	loginUseCase       *authUC.LoginUseCase
	currentUserUseCase *authUC.CurrentUserUseCase
}

func NewAuthHandler(register *authUC.RegisterUseCase, login *authUC.LoginUseCase, currentUser *authUC.CurrentUserUseCase) *AuthHandler {
	return &AuthHandler{
		registerUseCase:    register,
		loginUseCase:       login,
		currentUserUseCase: currentUser,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.AccessToken})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.currentUserUseCase.Execute(c.Request.Context(), authUC.CurrentUserInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(output.User))
}
