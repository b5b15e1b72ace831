package main

import (
	"net/http"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	ItemID   uint    `json:"item_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gte=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type orderCreateRequest struct {
	CustomerName        string             `json:"customer_name" binding:"required,min=1,max=100"`
	Email               string             `json:"email" binding:"required,email"`
	Phone               string             `json:"phone" binding:"required,min=10,max=20"`
	OrderItems          []orderItemRequest `json:"order_items" binding:"required,min=1,dive"`
	TotalAmount         float64            `json:"total_amount" binding:"required,gt=0"`
	OrderType           string             `json:"order_type" binding:"required,oneof=delivery pickup"`
	DeliveryAddress     string             `json:"delivery_address"`
	SpecialInstructions string             `json:"special_instructions"`
}

type orderUpdateRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=received preparing ready delivered cancelled"`
}

// listOrdersHandler lists orders newest first with an optional status filter
// (admin view; see DESIGN.md on the missing admin check).
func (s *Server) listOrdersHandler(c *gin.Context) {
	q := s.db.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrderHandler(c *gin.Context) {
	var order models.Order
	if err := s.db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) createOrderHandler(c *gin.Context) {
	var req orderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderType == models.OrderTypeDelivery && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address is required for delivery orders"})
		return
	}
	items := make(models.OrderItems, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, models.OrderItem{ItemID: it.ItemID, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	order := models.Order{
		CustomerName:        req.CustomerName,
		Email:               req.Email,
		Phone:               req.Phone,
		OrderItems:          items,
		TotalAmount:         req.TotalAmount,
		OrderType:           req.OrderType,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Status:              models.OrderReceived,
	}
	if err := s.db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	// TODO: send order confirmation email once SMTP delivery is wired up
	c.JSON(http.StatusCreated, order)
}

func (s *Server) updateOrderStatusHandler(c *gin.Context) {
	var order models.Order
	if err := s.db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if err := s.db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, order)
}
