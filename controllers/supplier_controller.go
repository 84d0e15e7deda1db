package controllers

import (
	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
)

type SupplierController struct {
	Service *services.SupplierService
}

func NewSupplierController(svc *services.SupplierService) *SupplierController {
	return &SupplierController{Service: svc}
}

// POST /suppliers
func (sc *SupplierController) Create(c *gin.Context) {
	var req services.SupplierIn
	if !bindJSON(c, &req) {
		return
	}
	sup, err := sc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, sup)
}

// GET /suppliers?active=true
func (sc *SupplierController) List(c *gin.Context) {
	out, err := sc.Service.List(c.Query("active") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /suppliers/:id
func (sc *SupplierController) Detail(c *gin.Context) {
	sup, err := sc.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sup)
}

// PUT /suppliers/:id
func (sc *SupplierController) Update(c *gin.Context) {
	var req services.SupplierIn
	if !bindJSON(c, &req) {
		return
	}
	sup, err := sc.Service.Update(paramID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sup)
}

// DELETE /suppliers/:id
func (sc *SupplierController) Deactivate(c *gin.Context) {
	if err := sc.Service.Deactivate(paramID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "deactivated")
}
