package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/service"
	mdw "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/middleware"
	resp "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/response"
)

type AttendanceHandler struct{ svc *service.AttendanceService }

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	rec, err := h.svc.CheckIn(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(rec))
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	rec, err := h.svc.CheckOut(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(rec))
}

func (h *AttendanceHandler) History(c *gin.Context) {
	entries, err := h.svc.History(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(entries))
}

func (h *AttendanceHandler) Summary(c *gin.Context) {
	s, err := h.svc.MonthlySummary(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(s))
}

func (h *AttendanceHandler) Today(c *gin.Context) {
	rec, err := h.svc.Today(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, resp.OK(nil))
		return
	}
	c.JSON(http.StatusOK, resp.OK(rec))
}
