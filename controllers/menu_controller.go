package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// POST /menu-items
func (mc *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if !bindJSON(c, &req) {
		return
	}
	m, err := mc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

// GET /menu-items?categoryId=&available=
func (mc *MenuController) List(c *gin.Context) {
	var categoryID uint
	if v, err := strconv.Atoi(c.Query("categoryId")); err == nil && v > 0 {
		categoryID = uint(v)
	}
	onlyAvailable := c.Query("available") == "true"

	items, err := mc.Service.List(categoryID, onlyAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	m, err := mc.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// PUT /menu-items/:id
func (mc *MenuController) Update(c *gin.Context) {
	var req services.MenuItemIn
	if !bindJSON(c, &req) {
		return
	}
	m, err := mc.Service.Update(paramID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id — deactivates; order history keeps the row
func (mc *MenuController) Deactivate(c *gin.Context) {
	if err := mc.Service.Deactivate(paramID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "deactivated")
}
