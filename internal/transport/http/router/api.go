package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/auth"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/handler"
	mdw "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/middleware"
)

// Handlers groups the feature handlers mounted on the API engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	Attendance *handler.AttendanceHandler
	Manager    *handler.ManagerHandler
	Dashboard  *handler.DashboardHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsMiddleware(corsOrigins),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// public
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// any authenticated user
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	authed.GET("/auth/me", h.Auth.Me)
	authed.POST("/attendance/checkin", h.Attendance.CheckIn)
	authed.POST("/attendance/checkout", h.Attendance.CheckOut)
	authed.GET("/attendance/my-history", h.Attendance.History)
	authed.GET("/attendance/my-summary", h.Attendance.Summary)
	authed.GET("/attendance/today", h.Attendance.Today)
	authed.GET("/dashboard/employee", h.Dashboard.Employee)

	// manager-only aggregations
	mgr := api.Group("")
	mgr.Use(mdw.AuthJWT(jwter, domain.RoleManager))
	mgr.GET("/attendance/all", h.Manager.AllAttendance)
	mgr.GET("/attendance/departments", h.Manager.Departments)
	mgr.GET("/attendance/employee/:id", h.Manager.EmployeeAttendance)
	mgr.GET("/attendance/summary", h.Manager.TeamSummary)
	mgr.GET("/attendance/export", h.Manager.ExportCSV)
	mgr.GET("/attendance/today-status", h.Manager.TodayStatus)
	mgr.GET("/dashboard/manager", h.Dashboard.Manager)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cors.New(cfg)
}
