package handlers

import (
	"net/http"
	"os"

	"legalease-backend/models"
	"legalease-backend/service"

	"github.com/gin-gonic/gin"
)

// highUrgencyWarning accompanies every answer rendered with high
// urgency, enforced here at the response boundary
const highUrgencyWarning = "This topic is time-sensitive. If this is happening to you right now, act quickly and consider contacting a lawyer or the legal aid helpline 15100."

// AnswerHandler handles HTTP requests for legal-guidance queries
type AnswerHandler struct {
	answerService *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// Ping handles GET /api/ping
func (h *AnswerHandler) Ping(c *gin.Context) {
	message := os.Getenv("PING_MESSAGE")
	if message == "" {
		message = "ping"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Demo handles GET /api/demo
func (h *AnswerHandler) Demo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the LegalEase API"})
}

// AnswerRequest represents the request body for answer endpoints
type AnswerRequest struct {
	Query string `json:"query"`
	Level string `json:"level"`
}

// Answer handles POST /api/answer
func (h *AnswerHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "query is required",
			},
		})
		return
	}

	answer := h.answerService.Answer(c.Request.Context(), service.AnswerRequest{
		Query: req.Query,
		Level: models.Level(req.Level),
	})
	if answer.Urgency == models.UrgencyHigh {
		answer.Warning = highUrgencyWarning
	}

	c.JSON(http.StatusOK, answer)
}

// Gemini handles POST /api/gemini. It runs the same chain as Answer and
// always returns 200: when the generation service fails, the body is
// the static fallback answer rather than a 5xx.
func (h *AnswerHandler) Gemini(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "query is required",
			},
		})
		return
	}

	answer := h.answerService.Answer(c.Request.Context(), service.AnswerRequest{
		Query: req.Query,
		Level: models.Level(req.Level),
	})
	if answer.Urgency == models.UrgencyHigh {
		answer.Warning = highUrgencyWarning
	}

	c.JSON(http.StatusOK, answer)
}

// RecentQuestions handles GET /api/questions/recent
func (h *AnswerHandler) RecentQuestions(c *gin.Context) {
	logs, err := h.answerService.RecentQuestions(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
	})
}
