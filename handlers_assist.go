package main

import (
	"net/http"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type recommendationRequest struct {
	Preferences         []string `json:"preferences" binding:"required,min=1"`
	Budget              float64  `json:"budget" binding:"omitempty,gt=0"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

type chatRequest struct {
	Message string `json:"message" binding:"required,min=1"`
	// history is accepted for API compatibility; the canned bot ignores it
	ConversationHistory []map[string]string `json:"conversation_history"`
}

type searchRequest struct {
	Query string `json:"query" binding:"required,min=1"`
}

func (s *Server) availableMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("is_available = ?", true).Find(&items).Error
	return items, err
}

func (s *Server) recommendationsHandler(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := s.availableMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menu items available"})
		return
	}
	recs := s.assist.Recommend(items, req.Preferences, req.Budget, req.DietaryRestrictions)
	if recs == nil {
		recs = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, recs)
}

func (s *Server) chatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.assist.Chat(req.Message))
}

func (s *Server) searchHandler(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := s.availableMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	results := s.assist.Search(items, req.Query)
	if results == nil {
		results = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) aiHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ai_enabled": s.assist.HasOpenAI(),
		"services": gin.H{
			"recommendations":    "available",
			"chatbot":            "available",
			"sentiment_analysis": "available",
			"search":             "available",
		},
	})
}
