package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restopos/pkg/resp"
	"restopos/services"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{Service: svc}
}

// POST /inventory
func (ic *InventoryController) Create(c *gin.Context) {
	var req services.InventoryItemIn
	if !bindJSON(c, &req) {
		return
	}
	item, err := ic.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /inventory?supplierId=
func (ic *InventoryController) List(c *gin.Context) {
	var supplierID uint
	if v, err := strconv.Atoi(c.Query("supplierId")); err == nil && v > 0 {
		supplierID = uint(v)
	}
	items, err := ic.Service.List(supplierID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /inventory/:id
func (ic *InventoryController) Detail(c *gin.Context) {
	item, err := ic.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /inventory/:id
func (ic *InventoryController) Update(c *gin.Context) {
	var req services.InventoryItemIn
	if !bindJSON(c, &req) {
		return
	}
	item, err := ic.Service.Update(paramID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory/:id
func (ic *InventoryController) Delete(c *gin.Context) {
	if err := ic.Service.Delete(paramID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "deleted")
}

type StockAdjustReq struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// PATCH /inventory/:id/stock — signed delta: receive stock or record usage
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	var req StockAdjustReq
	if !bindJSON(c, &req) {
		return
	}
	item, err := ic.Service.AdjustStock(paramID(c), req.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
