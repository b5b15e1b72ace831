package main

import (
	"bistro/pkg/assist"

	"gorm.io/gorm"
)

// Server bundles the dependencies the handlers need. It is constructed once
// in main and injected into gin, instead of living in package-level globals.
type Server struct {
	db        *gorm.DB
	cfg       *Config
	assist    *assist.Service
	jwtSecret []byte
}

// NewServer wires a Server from its parts.
func NewServer(db *gorm.DB, cfg *Config) *Server {
	return &Server{
		db:        db,
		cfg:       cfg,
		assist:    assist.New(cfg.OpenAIAPIKey),
		jwtSecret: []byte(cfg.JWTSecret),
	}
}
