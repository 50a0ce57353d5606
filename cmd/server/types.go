package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sycord/server/internal/config"
	"github.com/sycord/server/internal/generator"
	"github.com/sycord/server/internal/llm"
	"github.com/sycord/server/sycord/functions"
	"github.com/sycord/server/sycord/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	functionRepo *functions.Repository
	services     *Services
	router       *gin.Engine
}

// holds all external service clients
type Services struct {
	Generator *generator.Generator
	LLM       llm.TextGenerator
}
