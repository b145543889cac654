package handler

import (
	"context"
	"net/http"

	model "auction-market/internal/models"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	Register(ctx context.Context, caller model.Address, profile model.UserProfile) (model.User, error)
	Update(ctx context.Context, caller model.Address, profile model.UserProfile) (model.User, error)
	ChangeUserAddress(ctx context.Context, caller, newAddress model.Address) (model.User, error)
	Resign(ctx context.Context, caller model.Address) error
	GetUserIDIfExist(ctx context.Context, addr model.Address) (int64, error)
	GetUser(ctx context.Context, userID int64) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /users
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	h.saveProfile(c, "RegisterHandler", http.StatusCreated, "user registered successfully", h.service.Register)
}

// UpdateHandler handles PUT /users/me
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	h.saveProfile(c, "UpdateHandler", http.StatusOK, "user updated successfully", h.service.Update)
}

func (h *UserHandler) saveProfile(
	c *gin.Context,
	handlerName string,
	status int,
	message string,
	save func(context.Context, model.Address, model.UserProfile) (model.User, error),
) {
	caller, ok := helpers.Principal(c, handlerName)
	if !ok {
		return
	}
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	profile := model.UserProfile{Name: req.Name, Category: req.Category, Class: req.Class, Code: req.Code}
	user, err := save(c.Request.Context(), caller, profile)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"caller": caller})
		return
	}

	utils.JSONResponse(c, status, user, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"user_id": user.UserID,
		"address": user.Address,
	})
}

// ChangeAddressHandler handles POST /users/me/address
func (h *UserHandler) ChangeAddressHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "ChangeAddressHandler")
	if !ok {
		return
	}
	var req helpers.ChangeAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChangeAddressHandler", err)
		return
	}
	newAddress, ok := helpers.ParseAddressField(c, "new_address", req.NewAddress)
	if !ok {
		return
	}

	user, err := h.service.ChangeUserAddress(c.Request.Context(), caller, newAddress)
	if err != nil {
		helpers.RespondError(c, "ChangeAddressHandler", err, map[string]any{"caller": caller, "new_address": newAddress})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user address changed successfully")
	helpers.LogSuccess("ChangeAddressHandler", "user address changed successfully", map[string]any{
		"user_id": user.UserID,
		"from":    caller,
		"to":      newAddress,
	})
}

// ResignHandler handles DELETE /users/me
func (h *UserHandler) ResignHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "ResignHandler")
	if !ok {
		return
	}
	if err := h.service.Resign(c.Request.Context(), caller); err != nil {
		helpers.RespondError(c, "ResignHandler", err, map[string]any{"caller": caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user resigned successfully")
	helpers.LogSuccess("ResignHandler", "user resigned successfully", map[string]any{"address": caller})
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID, ok := helpers.IDParam(c, "user_id")
	if !ok {
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// LookupUserIDHandler handles GET /addresses/:address/user
func (h *UserHandler) LookupUserIDHandler(c *gin.Context) {
	addr, ok := helpers.AddressParam(c, "address")
	if !ok {
		return
	}
	userID, err := h.service.GetUserIDIfExist(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "LookupUserIDHandler", err, map[string]any{"address": addr})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.UserIDResponse{Address: string(addr), UserID: userID}, "user id retrieved successfully")
}
