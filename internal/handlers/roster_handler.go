package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"classroom-service/internal/auth"
	"classroom-service/internal/service"
)

type RosterHandler struct {
	Service *service.RosterService
}

func NewRosterHandler(s *service.RosterService) *RosterHandler {
	return &RosterHandler{Service: s}
}

// Register handles student self-registration, either from a scanned QR
// payload or a bare classroom id.
func (h *RosterHandler) Register(c *gin.Context) {
	var req struct {
		Payload     string `json:"payload"`
		ClassroomID string `json:"classroom_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)

	var err error
	var created bool
	var classroom any
	switch {
	case req.Payload != "":
		classroom, created, err = h.Service.RegisterByPayload(context.Background(), req.Payload, claims.UserID, claims.Name)
	case req.ClassroomID != "":
		classroom, created, err = h.Service.RegisterByID(context.Background(), req.ClassroomID, claims.UserID, claims.Name)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload or classroom_id is required"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"classroom": classroom, "created": created})
}

func (h *RosterHandler) List(c *gin.Context) {
	claims := auth.FromContext(c)
	roster, err := h.Service.List(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

func (h *RosterHandler) Confirm(c *gin.Context) {
	claims := auth.FromContext(c)
	err := h.Service.Confirm(context.Background(), c.Param("id"), c.Param("studentId"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registration confirmed"})
}

// MyRegistration reports the caller's registration status in a classroom,
// backing the student's classroom detail view.
func (h *RosterHandler) MyRegistration(c *gin.Context) {
	claims := auth.FromContext(c)
	entry, err := h.Service.Registration(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// MyClassrooms backs the student dashboard.
func (h *RosterHandler) MyClassrooms(c *gin.Context) {
	claims := auth.FromContext(c)
	classrooms, err := h.Service.ClassroomsFor(context.Background(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, classrooms)
}
