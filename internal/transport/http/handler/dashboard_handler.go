package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/service"
	mdw "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/middleware"
	resp "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/response"
)

type DashboardHandler struct{ svc *service.DashboardService }

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Employee(c *gin.Context) {
	dash, err := h.svc.EmployeeDashboard(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(dash))
}

func (h *DashboardHandler) Manager(c *gin.Context) {
	dash, err := h.svc.ManagerDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(dash))
}
