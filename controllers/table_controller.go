package controllers

import (
	"github.com/gin-gonic/gin"

	"restopos/entity"
	"restopos/pkg/resp"
	"restopos/services"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Service: svc}
}

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var req services.TableIn
	if !bindJSON(c, &req) {
		return
	}
	t, err := tc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// GET /tables/:id
func (tc *TableController) Detail(c *gin.Context) {
	t, err := tc.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// PUT /tables/:id
func (tc *TableController) Update(c *gin.Context) {
	var req services.TableIn
	if !bindJSON(c, &req) {
		return
	}
	t, err := tc.Service.Update(paramID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

type TableStatusReq struct {
	Status entity.TableStatus `json:"status" binding:"required"`
}

// PATCH /tables/:id/status — manual RESERVED / AVAILABLE only
func (tc *TableController) SetStatus(c *gin.Context) {
	var req TableStatusReq
	if !bindJSON(c, &req) {
		return
	}
	t, err := tc.Service.SetStatus(paramID(c), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	if err := tc.Service.Delete(paramID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "deleted")
}
