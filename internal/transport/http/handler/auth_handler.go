package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/service"
	mdw "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/middleware"
	resp "github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/response"
)

type AuthHandler struct{ svc *service.AuthService }

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type registerIn struct {
	Name       string `json:"name" binding:"required,max=64"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"omitempty,oneof=employee manager"`
	Department string `json:"department" binding:"omitempty,max=64"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.svc.Register(service.RegisterInput{
		Name:       in.Name,
		Email:      in.Email,
		Password:   in.Password,
		Role:       in.Role,
		Department: in.Department,
	})
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	token, u, err := h.svc.Login(in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"token": token, "user": u}))
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.Me(c.GetString(mdw.KeyUserID))
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}
