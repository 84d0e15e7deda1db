package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

func reportRange(c *gin.Context) (*time.Time, *time.Time) {
	var from, to *time.Time
	if t, ok := parseDate(c.Query("startDate")); ok {
		from = &t
	}
	if t, ok := parseDate(c.Query("endDate")); ok {
		to = &t
	}
	return from, to
}

// GET /reports/top-items?startDate&endDate&limit
func (rc *ReportController) TopItems(c *gin.Context) {
	from, to := reportRange(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := rc.Service.TopItems(from, to, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /reports/sales?startDate&endDate
func (rc *ReportController) Sales(c *gin.Context) {
	from, to := reportRange(c)

	summary, err := rc.Service.Sales(from, to)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /reports/inventory — items at or below reorder level
func (rc *ReportController) Inventory(c *gin.Context) {
	items, err := rc.Service.LowStock()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
