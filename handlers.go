package main

import (
	"errors"
	"net/http"
	"strings"

	"bistro/models"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

func (s *Server) setupRoutes(r *gin.Engine) {
	r.Use(s.corsMiddleware())

	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)

	auth := r.Group("/api/auth")
	auth.POST("/register", s.registerHandler)
	auth.POST("/login", s.loginHandler)
	auth.POST("/login/json", s.loginJSONHandler)
	me := auth.Group("")
	me.Use(s.authMiddleware())
	me.GET("/me", s.meHandler)
	me.PUT("/me", s.updateMeHandler)

	menu := r.Group("/api/menu")
	menu.GET("", s.listMenuItemsHandler)
	menu.GET("/:id", s.getMenuItemHandler)
	menu.POST("", s.createMenuItemHandler)
	menu.PUT("/:id", s.updateMenuItemHandler)
	menu.DELETE("/:id", s.deleteMenuItemHandler)
	menu.POST("/:id/image", s.uploadMenuImageHandler)
	menu.GET("/categories/list", s.listCategoriesHandler)

	res := r.Group("/api/reservations")
	res.GET("", s.listReservationsHandler)
	res.GET("/:id", s.getReservationHandler)
	res.POST("", s.createReservationHandler)
	res.PUT("/:id", s.updateReservationHandler)
	res.DELETE("/:id", s.cancelReservationHandler)

	orders := r.Group("/api/orders")
	orders.GET("", s.listOrdersHandler)
	orders.GET("/:id", s.getOrderHandler)
	orders.POST("", s.createOrderHandler)
	orders.PUT("/:id", s.updateOrderStatusHandler)

	reviews := r.Group("/api/reviews")
	reviews.GET("", s.listReviewsHandler)
	reviews.GET("/stats/summary", s.reviewStatsHandler)
	reviews.GET("/:id", s.getReviewHandler)
	reviews.POST("", s.createReviewHandler)
	reviews.PUT("/:id/approve", s.approveReviewHandler)
	reviews.PUT("/:id/reject", s.rejectReviewHandler)

	contact := r.Group("/api/contact")
	contact.GET("", s.listContactMessagesHandler)
	contact.GET("/:id", s.getContactMessageHandler)
	contact.POST("", s.createContactMessageHandler)
	contact.PUT("/:id/mark-read", s.markMessageReadHandler)

	cart := r.Group("/api/cart")
	cart.Use(s.authMiddleware())
	cart.GET("", s.getCartHandler)
	cart.POST("", s.addCartItemHandler)
	cart.PUT("/:id", s.updateCartItemHandler)
	cart.DELETE("/:id", s.removeCartItemHandler)
	cart.DELETE("", s.clearCartHandler)

	ai := r.Group("/api/ai")
	ai.POST("/recommendations", s.recommendationsHandler)
	ai.POST("/chat", s.chatHandler)
	ai.POST("/search", s.searchHandler)
	ai.GET("/health", s.aiHealthHandler)
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Restaurant API",
		"status":  "online",
		"version": "1.0.0",
	})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// corsMiddleware answers preflight requests and sets CORS headers for the
// configured origins.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, o := range s.cfg.CORSOrigins() {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// authMiddleware verifies the bearer token, re-resolves the account and
// rejects inactive or deleted accounts even when the token itself is valid.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		email, err := verifyToken(strings.TrimPrefix(authHeader, "Bearer "), s.jwtSecret)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}
		user, err := s.FindUserByEmail(email)
		if err != nil || !user.IsActive {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser fetches the account stored by authMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

func (s *Server) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := s.RegisterUser(req.Email, req.FullName, req.Password, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

// loginHandler accepts OAuth2-style form credentials (username = email).
func (s *Server) loginHandler(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	s.login(c, email, password)
}

type loginJSONRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// loginJSONHandler is the JSON alternative to the form-based login.
func (s *Server) loginJSONHandler(c *gin.Context) {
	var req loginJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.login(c, req.Email, req.Password)
}

func (s *Server) login(c *gin.Context, email, password string) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, ErrInactiveAccount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Inactive user account"})
			return
		}
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	token, err := issueToken(user.Email, s.jwtSecret, s.cfg.AccessTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (s *Server) meHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateMeRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Password *string `json:"password" binding:"omitempty,min=6,max=100"`
}

func (s *Server) updateMeHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing user"})
		return
	}
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.UpdateUser(user, UserUpdate{FullName: req.FullName, Phone: req.Phone, Password: req.Password}); err != nil {
		if errors.Is(err, ErrPasswordTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}
