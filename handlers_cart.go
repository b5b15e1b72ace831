package main

import (
	"net/http"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

type cartAddRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"omitempty,gte=1"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type cartLine struct {
	ID            uint    `json:"id"`
	MenuItemID    uint    `json:"menu_item_id"`
	Quantity      int     `json:"quantity"`
	MenuItemName  string  `json:"menu_item_name"`
	MenuItemPrice float64 `json:"menu_item_price"`
	MenuItemImage string  `json:"menu_item_image,omitempty"`
	Subtotal      float64 `json:"subtotal"`
}

// getCartHandler returns the authenticated user's cart with totals.
func (s *Server) getCartHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var items []models.CartItem
	if err := s.db.Preload("MenuItem").Where("user_id = ?", user.ID).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	lines := make([]cartLine, 0, len(items))
	totalItems := 0
	subtotal := 0.0
	for _, item := range items {
		lineSubtotal := item.MenuItem.Price * float64(item.Quantity)
		lines = append(lines, cartLine{
			ID:            item.ID,
			MenuItemID:    item.MenuItemID,
			Quantity:      item.Quantity,
			MenuItemName:  item.MenuItem.Name,
			MenuItemPrice: item.MenuItem.Price,
			MenuItemImage: item.MenuItem.ImageURL,
			Subtotal:      lineSubtotal,
		})
		totalItems += item.Quantity
		subtotal += lineSubtotal
	}
	tax := subtotal * s.cfg.CartTaxRate
	c.JSON(http.StatusOK, gin.H{
		"items":       lines,
		"total_items": totalItems,
		"subtotal":    subtotal,
		"tax":         tax,
		"total":       subtotal + tax,
	})
}

// addCartItemHandler adds a menu item to the cart; adding an item that is
// already present bumps its quantity.
func (s *Server) addCartItemHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	var menuItem models.MenuItem
	if err := s.db.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if !menuItem.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu item is not available"})
		return
	}
	var existing models.CartItem
	if err := s.db.Where("user_id = ? AND menu_item_id = ?", user.ID, req.MenuItemID).First(&existing).Error; err == nil {
		existing.Quantity += qty
		if err := s.db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	item := models.CartItem{UserID: user.ID, MenuItemID: req.MenuItemID, Quantity: qty}
	if err := s.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateCartItemHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	item.Quantity = req.Quantity
	if err := s.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) removeCartItemHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	if err := s.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearCartHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if err := s.db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
