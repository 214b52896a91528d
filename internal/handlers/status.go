package handlers

import "github.com/gin-gonic/gin"

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func Status(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "Daily Diet API",
		"version": "0.1.0",
		"status":  "operational",
	})
}
