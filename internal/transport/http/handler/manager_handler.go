package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/export"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/service"
	resp "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/response"
)

type ManagerHandler struct {
	svc *service.ManagerService
	loc *time.Location
}

func NewManagerHandler(svc *service.ManagerService, loc *time.Location) *ManagerHandler {
	return &ManagerHandler{svc: svc, loc: loc}
}

func (h *ManagerHandler) AllAttendance(c *gin.Context) {
	rows, err := h.svc.AllAttendance()
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(rows))
}

func (h *ManagerHandler) EmployeeAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "missing id"))
		return
	}
	rows, err := h.svc.EmployeeAttendance(id)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(rows))
}

func (h *ManagerHandler) TeamSummary(c *gin.Context) {
	s, err := h.svc.TeamSummary()
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(s))
}

func (h *ManagerHandler) TodayStatus(c *gin.Context) {
	roster, err := h.svc.TodayStatus()
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(roster))
}

func (h *ManagerHandler) Departments(c *gin.Context) {
	depts, err := h.svc.Departments()
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(depts))
}

// ExportCSV streams the flat attendance table; this endpoint answers raw
// CSV, not the JSON envelope.
func (h *ManagerHandler) ExportCSV(c *gin.Context) {
	rows, err := h.svc.AllAttendance()
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	b, err := export.CSV(rows, h.loc)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attendance.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}
