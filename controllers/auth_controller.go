package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
	"restopos/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// ===== Login =====

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// ===== Staff management (admin) =====

type CreateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=ADMIN MANAGER STAFF"`
}

// POST /users
func (ac *AuthController) CreateUser(c *gin.Context) {
	var req CreateUserReq
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.Service.CreateUser(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /users
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.Service.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// PATCH /users/:id/active
func (ac *AuthController) SetActive(c *gin.Context) {
	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		resp.BadRequest(c, "active must be true or false")
		return
	}
	if err := ac.Service.SetActive(paramID(c), active); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "updated")
}
