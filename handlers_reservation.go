package main

import (
	"net/http"
	"time"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type reservationCreateRequest struct {
	GuestName       string    `json:"guest_name" binding:"required,min=1,max=100"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required,min=10,max=20"`
	ReservationDate time.Time `json:"reservation_date" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,gte=1,lte=20"`
	SpecialRequests string    `json:"special_requests"`
}

type reservationUpdateRequest struct {
	GuestName       *string    `json:"guest_name" binding:"omitempty,min=1,max=100"`
	Email           *string    `json:"email" binding:"omitempty,email"`
	Phone           *string    `json:"phone" binding:"omitempty,min=10,max=20"`
	ReservationDate *time.Time `json:"reservation_date"`
	PartySize       *int       `json:"party_size" binding:"omitempty,gte=1,lte=20"`
	SpecialRequests *string    `json:"special_requests"`
	Status          *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// listReservationsHandler lists reservations with optional status and date
// filters (admin view; see DESIGN.md on the missing admin check).
func (s *Server) listReservationsHandler(c *gin.Context) {
	q := s.db.Model(&models.Reservation{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		q = q.Where("reservation_date >= ? AND reservation_date < ?", day, day.AddDate(0, 0, 1))
	}
	var reservations []models.Reservation
	if err := q.Order("reservation_date desc").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

func (s *Server) getReservationHandler(c *gin.Context) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (s *Server) createReservationHandler(c *gin.Context) {
	var req reservationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReservationDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reservation date must be in the future"})
		return
	}
	reservation := models.Reservation{
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		ReservationDate: req.ReservationDate,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationPending,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	// TODO: send confirmation email once SMTP delivery is wired up
	c.JSON(http.StatusCreated, reservation)
}

func (s *Server) updateReservationHandler(c *gin.Context) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	var req reservationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.GuestName != nil {
		reservation.GuestName = *req.GuestName
	}
	if req.Email != nil {
		reservation.Email = *req.Email
	}
	if req.Phone != nil {
		reservation.Phone = *req.Phone
	}
	if req.ReservationDate != nil {
		reservation.ReservationDate = *req.ReservationDate
	}
	if req.PartySize != nil {
		reservation.PartySize = *req.PartySize
	}
	if req.SpecialRequests != nil {
		reservation.SpecialRequests = *req.SpecialRequests
	}
	if req.Status != nil {
		reservation.Status = *req.Status
	}
	if err := s.db.Save(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// cancelReservationHandler marks the reservation cancelled rather than
// deleting the row.
func (s *Server) cancelReservationHandler(c *gin.Context) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	reservation.Status = models.ReservationCancelled
	if err := s.db.Save(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
