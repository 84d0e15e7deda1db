package controllers

import (
	"github.com/gin-gonic/gin"

	"restopos/pkg/resp"
	"restopos/services"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Service: svc}
}

// GET /settings
func (sc *SettingsController) Get(c *gin.Context) {
	s, err := sc.Service.Get()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, s)
}

// PUT /settings
func (sc *SettingsController) Update(c *gin.Context) {
	var req services.SettingsIn
	if !bindJSON(c, &req) {
		return
	}
	s, err := sc.Service.Update(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, s)
}
