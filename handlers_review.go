package main

import (
	"net/http"
	"strconv"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type reviewCreateRequest struct {
	CustomerName string `json:"customer_name" binding:"required,min=1,max=100"`
	Rating       int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment      string `json:"comment" binding:"required,min=10"`
}

// listReviewsHandler lists reviews, approved-only by default, with an
// optional minimum-rating filter.
func (s *Server) listReviewsHandler(c *gin.Context) {
	q := s.db.Model(&models.Review{})
	if c.DefaultQuery("approved_only", "true") != "false" {
		q = q.Where("is_approved = ?", models.ReviewApproved)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		n, err := strconv.Atoi(minRating)
		if err != nil || n < 1 || n > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating must be between 1 and 5"})
			return
		}
		q = q.Where("rating >= ?", n)
	}
	var reviews []models.Review
	if err := q.Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) getReviewHandler(c *gin.Context) {
	var review models.Review
	if err := s.db.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// createReviewHandler stores a new review as pending approval, with the
// sentiment scored at creation time.
func (s *Server) createReviewHandler(c *gin.Context) {
	var req reviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review := models.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Sentiment:    s.assist.AnalyzeSentiment(req.Comment),
		IsApproved:   models.ReviewPending,
	}
	if err := s.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (s *Server) approveReviewHandler(c *gin.Context) {
	s.setReviewApproval(c, models.ReviewApproved)
}

func (s *Server) rejectReviewHandler(c *gin.Context) {
	s.setReviewApproval(c, models.ReviewRejected)
}

func (s *Server) setReviewApproval(c *gin.Context, state int) {
	var review models.Review
	if err := s.db.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	review.IsApproved = state
	if err := s.db.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// reviewStatsHandler summarizes approved reviews: count, average rating and
// per-star distribution.
func (s *Server) reviewStatsHandler(c *gin.Context) {
	var reviews []models.Review
	if err := s.db.Where("is_approved = ?", models.ReviewApproved).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	if len(reviews) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"total_reviews":       0,
			"average_rating":      0,
			"rating_distribution": distribution,
		})
		return
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		distribution[r.Rating]++
	}
	avg := float64(sum) / float64(len(reviews))
	c.JSON(http.StatusOK, gin.H{
		"total_reviews":       len(reviews),
		"average_rating":      float64(int(avg*100+0.5)) / 100,
		"rating_distribution": distribution,
	})
}
