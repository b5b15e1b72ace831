package main

import (
	"net/http"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type contactCreateRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,min=10,max=20"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=10"`
}

// listContactMessagesHandler lists messages newest first (admin view; see
// DESIGN.md on the missing admin check).
func (s *Server) listContactMessagesHandler(c *gin.Context) {
	var messages []models.ContactMessage
	if err := s.db.Order("created_at desc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) getContactMessageHandler(c *gin.Context) {
	var message models.ContactMessage
	if err := s.db.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact message not found"})
		return
	}
	c.JSON(http.StatusOK, message)
}

func (s *Server) createContactMessageHandler(c *gin.Context) {
	var req contactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (s *Server) markMessageReadHandler(c *gin.Context) {
	var message models.ContactMessage
	if err := s.db.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact message not found"})
		return
	}
	message.IsRead = true
	if err := s.db.Save(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, message)
}
