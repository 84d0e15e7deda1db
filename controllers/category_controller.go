package controllers

import (
	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Service: svc}
}

// POST /categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if !bindJSON(c, &req) {
		return
	}
	cat, err := cc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /categories?active=true
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Service.List(c.Query("active") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /categories/:id
func (cc *CategoryController) Detail(c *gin.Context) {
	cat, err := cc.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// PUT /categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	var req services.CategoryIn
	if !bindJSON(c, &req) {
		return
	}
	cat, err := cc.Service.Update(paramID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (cc *CategoryController) Deactivate(c *gin.Context) {
	if err := cc.Service.Deactivate(paramID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "deactivated")
}
