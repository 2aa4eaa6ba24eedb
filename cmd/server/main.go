package main

import (
	"github.com/junctionlabs/junction-backend/internal/server"
)

// @title Junction Backend API
// @version 1.0
// @description Custodial cross-chain swap settlement service.
// @BasePath /api/v1
func main() {
	server.Init()
}
