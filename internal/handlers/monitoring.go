package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/monitoring"
)

// MonitoringHandler exposes operational reports behind a shared API key.
// It is separate from user auth; the key belongs to the operator, not to
// any account.
type MonitoringHandler struct {
	service *monitoring.Service
}

func NewMonitoringHandler(service *monitoring.Service) *MonitoringHandler {
	return &MonitoringHandler{service: service}
}

func (h *MonitoringHandler) checkMonitoringKey(c *gin.Context) bool {
	expected := strings.TrimSpace(os.Getenv("MONITORING_API_KEY"))
	if expected == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Monitoring API is disabled"})
		return false
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid monitoring key"})
		return false
	}
	return true
}

func (h *MonitoringHandler) MonitorStatus(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.StatusText()})
}

func (h *MonitoringHandler) MonitorConnections(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.ConnectionsText()})
}

func (h *MonitoringHandler) MonitorRuntime(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.RuntimeText()})
}

func (h *MonitoringHandler) MonitorUsers(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.UsersText()})
}

func (h *MonitoringHandler) MonitorAll(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.AllText()})
}

func (h *MonitoringHandler) MonitorHelp(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.HelpText()})
}

func (h *MonitoringHandler) MonitorSnapshot(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, h.service.Snapshot())
}
