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

type CheckinHandler struct {
	Service *service.CheckinService
}

func NewCheckinHandler(s *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{Service: s}
}

func (h *CheckinHandler) Create(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	checkin, err := h.Service.Create(context.Background(), c.Param("id"), claims.UserID, req.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"checkin": checkin,
		"qr_url":  h.Service.QRLink(checkin.ClassroomID, checkin.ID),
	})
}

func (h *CheckinHandler) List(c *gin.Context) {
	claims := auth.FromContext(c)
	checkins, err := h.Service.List(context.Background(), c.Param("id"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, checkins)
}

func (h *CheckinHandler) Get(c *gin.Context) {
	checkin, err := h.Service.Get(context.Background(), c.Param("id"), c.Param("checkinId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, checkin)
}

// SetStatus applies the instructor transitions: open, close, disable.
func (h *CheckinHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status *models.CheckinStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	checkin, err := h.Service.SetStatus(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID, *req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, checkin)
}

// QR renders the check-in link as a QR PNG for projection in class.
func (h *CheckinHandler) QR(c *gin.Context) {
	classroomID, checkinID := c.Param("id"), c.Param("checkinId")
	if _, err := h.Service.Get(context.Background(), classroomID, checkinID); err != nil {
		fail(c, err)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := qr.PNG(h.Service.QRLink(classroomID, checkinID), size)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Scan records a student's presence from a scanned QR payload.
func (h *CheckinHandler) Scan(c *gin.Context) {
	var req struct {
		Payload string `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	presence, err := h.Service.Scan(context.Background(), req.Payload, claims.UserID, claims.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, presence)
}

func (h *CheckinHandler) Attendance(c *gin.Context) {
	claims := auth.FromContext(c)
	records, err := h.Service.Attendance(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *CheckinHandler) Scores(c *gin.Context) {
	claims := auth.FromContext(c)
	records, err := h.Service.Scores(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	type scoredRecord struct {
		models.ScoreRecord
		Total float64 `json:"total"`
	}
	out := make([]scoredRecord, 0, len(records))
	for _, r := range records {
		out = append(out, scoredRecord{ScoreRecord: r, Total: r.Total()})
	}
	c.JSON(http.StatusOK, out)
}
