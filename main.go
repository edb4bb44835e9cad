package main

import (
	"github.com/gin-gonic/gin"

	"github.com/formpilot/formpilot/src/config"
	"github.com/formpilot/formpilot/src/db"
	"github.com/formpilot/formpilot/src/middleware"
	"github.com/formpilot/formpilot/src/minio"
	"github.com/formpilot/formpilot/src/routes"
)

// @title FormPilot API
// @version 1.0
// @description Form builder, submission collection and analytics service.
// @BasePath /
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	r := gin.Default()
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}
