package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"restopos/entity"
	"restopos/pkg/resp"
	"restopos/repository"
	"restopos/services"
	"restopos/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if !bindJSON(c, &req) {
		return
	}

	order, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status:    entity.OrderStatus(c.Query("status")),
		OrderType: entity.OrderType(c.Query("orderType")),
	}
	if v, err := strconv.Atoi(c.Query("tableId")); err == nil && v > 0 {
		f.TableID = uint(v)
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if t, ok := parseDate(c.Query("startDate")); ok {
		f.From = &t
	}
	if t, ok := parseDate(c.Query("endDate")); ok {
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.To = &end
	}

	items, total, err := oc.Service.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Service.Get(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if !bindJSON(c, &req) {
		return
	}

	order, err := oc.Service.UpdateStatus(paramID(c), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — cancel, never a physical delete
func (oc *OrderController) Cancel(c *gin.Context) {
	order, err := oc.Service.Cancel(paramID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
