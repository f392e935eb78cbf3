package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/overthinkhq/ponder/internal/common"
	"github.com/overthinkhq/ponder/internal/model"
)

// Question length bounds, matching the public API contract.
const (
	minQuestionLength = 5
	maxQuestionLength = 500
)

type analyzeRequest struct {
	Question string `json:"question" binding:"required"`
}

type analyzeResponse struct {
	Question       string               `json:"question"`
	Category       model.Category       `json:"category"`
	Confidence     float64              `json:"confidence"`
	Constraints    *model.ConstraintSet `json:"constraints,omitempty"`
	Entities       []string             `json:"entities,omitempty"`
	Considerations []string             `json:"considerations"`
	Suggestion     string               `json:"suggestion"`
	ProcessingTime float64              `json:"processing_time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": s.version,
	})
}

func (s *Server) handleIntents(c *gin.Context) {
	categories := model.Categories()
	intents := make([]string, 0, len(categories)+1)
	for _, category := range categories {
		intents = append(intents, category.String())
	}
	intents = append(intents, model.CategoryGeneral.String())

	c.JSON(http.StatusOK, gin.H{
		"intents": intents,
		"total":   len(intents),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if len(question) < minQuestionLength || len(question) > maxQuestionLength {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: "question must be between 5 and 500 characters",
		})
		return
	}

	report, err := s.analyzer.Analyze(c.Request.Context(), question)
	if err != nil {
		if errors.Is(err, common.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		common.LogError(err, "Analysis failed", common.Fields{"question_len": len(question)})
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		Question:       report.Question,
		Category:       report.Category,
		Confidence:     report.Confidence,
		Constraints:    report.Constraints,
		Entities:       report.Entities,
		Considerations: report.Considerations,
		Suggestion:     report.Suggestion,
		ProcessingTime: report.ProcessingTime.Seconds(),
	})
}
