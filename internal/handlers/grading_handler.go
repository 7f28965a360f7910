package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"classroom-service/internal/auth"
	"classroom-service/internal/service"
)

type GradingHandler struct {
	Service *service.GradingService
}

func NewGradingHandler(s *service.GradingService) *GradingHandler {
	return &GradingHandler{Service: s}
}

// SubmitAnswer records the calling student's answer to one question.
func (h *GradingHandler) SubmitAnswer(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), c.Param("checkinId"), number, claims.UserID, req.Answer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "answer submitted"})
}

// Answers is the grading view: submissions joined with roster names.
func (h *GradingHandler) Answers(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	claims := auth.FromContext(c)
	graded, err := h.Service.Answers(context.Background(), c.Param("id"), c.Param("checkinId"), number, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, graded)
}

// SaveScores writes the instructor's grades for one question.
func (h *GradingHandler) SaveScores(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	var req struct {
		Scores map[string]float64 `json:"scores" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	err := h.Service.SaveScores(context.Background(), c.Param("id"), c.Param("checkinId"), number, claims.UserID, req.Scores)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "scores saved"})
}
