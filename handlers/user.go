package handlers

import (
	"errors"
	"net/http"

	"github.com/Souvikgooooo/ThrivePro/middleware"
	userSvc "github.com/Souvikgooooo/ThrivePro/services/user"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration and authentication over HTTP.
type UserHandler struct {
	Service userSvc.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userSvc.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type registerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	account, token, err := h.Service.Register(userSvc.RegisterInput{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.Envelope{
		Status: "success",
		Data:   map[string]any{"user": account, "token": token},
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a fresh token.
func (h *UserHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	account, token, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Envelope{
		Status: "success",
		Data:   map[string]any{"user": account, "token": token},
	})
}

// Logout revokes the authenticated account's token.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Service.RevokeToken(c.GetString(middleware.CtxActorID)); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Envelope{Status: "success", Message: "logged out"})
}

func respondUserError(c *gin.Context, err error) {
	var (
		validationErr userSvc.ValidationError
		emailTakenErr userSvc.EmailTakenError
	)

	switch {
	case errors.Is(err, userSvc.ErrInvalidCredentials):
		utils.JSONFail(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &validationErr):
		utils.JSONFail(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &emailTakenErr):
		utils.JSONFail(c, http.StatusConflict, emailTakenErr.Error())
	default:
		utils.JSONFail(c, http.StatusInternalServerError, "something went wrong, please try again later")
	}
}
