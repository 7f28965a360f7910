package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classroom-service/internal/auth"
	"classroom-service/internal/models"
	"classroom-service/internal/qr"
	"classroom-service/internal/service"
)

type ClassroomHandler struct {
	Service *service.ClassroomService
}

func NewClassroomHandler(s *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{Service: s}
}

func (h *ClassroomHandler) Create(c *gin.Context) {
	var info models.ClassroomInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	classroom, err := h.Service.Create(context.Background(), claims.UserID, info)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, classroom)
}

func (h *ClassroomHandler) ListOwned(c *gin.Context) {
	claims := auth.FromContext(c)
	classrooms, err := h.Service.ListOwned(context.Background(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, classrooms)
}

func (h *ClassroomHandler) Get(c *gin.Context) {
	claims := auth.FromContext(c)
	classroom, err := h.Service.GetOwned(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, classroom)
}

func (h *ClassroomHandler) UpdateInfo(c *gin.Context) {
	var info models.ClassroomInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	classroom, err := h.Service.UpdateInfo(context.Background(), c.Param("id"), claims.UserID, info)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, classroom)
}

// RegisterQR renders the classroom registration link as a QR PNG.
func (h *ClassroomHandler) RegisterQR(c *gin.Context) {
	claims := auth.FromContext(c)
	classroom, err := h.Service.GetOwned(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := qr.PNG(h.Service.RegisterLink(classroom.ID), size)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RegisterLink returns the raw registration URL, for clients rendering
// their own code.
func (h *ClassroomHandler) RegisterLink(c *gin.Context) {
	claims := auth.FromContext(c)
	classroom, err := h.Service.GetOwned(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.Service.RegisterLink(classroom.ID)})
}
