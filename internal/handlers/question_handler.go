package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classroom-service/internal/auth"
	"classroom-service/internal/service"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

func questionNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question number"})
		return 0, false
	}
	return number, true
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var input service.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	question, err := h.Service.Create(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// ListAll is the authoring view with hidden questions included.
func (h *QuestionHandler) ListAll(c *gin.Context) {
	claims := auth.FromContext(c)
	questions, err := h.Service.ListAll(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListVisible is the student view: visible questions only, ascending by
// number.
func (h *QuestionHandler) ListVisible(c *gin.Context) {
	questions, err := h.Service.ListVisible(context.Background(), c.Param("id"), c.Param("checkinId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// NextNumber suggests the number for the authoring form.
func (h *QuestionHandler) NextNumber(c *gin.Context) {
	next, err := h.Service.NextNumber(context.Background(), c.Param("id"), c.Param("checkinId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next_question_no": next})
}

func (h *QuestionHandler) Get(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	question, err := h.Service.Get(context.Background(), c.Param("id"), c.Param("checkinId"), number)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) Update(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	var input service.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := auth.FromContext(c)
	question, err := h.Service.Update(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID, number, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	number, ok := questionNumber(c)
	if !ok {
		return
	}
	claims := auth.FromContext(c)
	if err := h.Service.Delete(context.Background(), c.Param("id"), c.Param("checkinId"), claims.UserID, number); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
