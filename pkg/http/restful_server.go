package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"tidewatch.xyz/boat-maintenance-service/pkg/upkeep"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *upkeep.Upkeep
	RateLimiterStore *upkeep.RateLimiterStore
	JwtSecret        []byte
	CronSecret       string
}

func (rs *RestfulServer) GetLimiter(userID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID string) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	// Triggered by the scheduler, authorized by shared secret instead of a
	// user token.
	rs.Server.GET("/api/cron/notifications", rs.RunNotifications)

	api := rs.Server.Group("/api", AuthMiddleware(rs.JwtSecret))
	{
		api.POST("/boats", rs.CreateBoat)
		api.GET("/boats", rs.ListBoats)
		api.GET("/boats/:id", rs.GetBoat)
		api.POST("/boats/:id/crew", rs.AddCrewMember)

		api.POST("/boats/:id/components", rs.CreateComponent)
		api.GET("/boats/:id/components", rs.ListComponents)
		api.PATCH("/components/:id", rs.UpdateComponent)

		api.POST("/boats/:id/documents", rs.CreateDocument)
		api.GET("/boats/:id/documents", rs.ListDocuments)

		api.POST("/boats/:id/safety-equipment", rs.CreateSafetyEquipment)
		api.GET("/boats/:id/safety-equipment", rs.ListSafetyEquipment)

		api.GET("/boats/:id/alerts", rs.GetBoatAlerts)
		api.POST("/components/:id/dismiss-alert", rs.DismissAlert)
		api.POST("/components/:id/logs", rs.CreateMaintenanceLog)
		api.GET("/boats/:id/spend", rs.GetSpendSummary)

		api.PUT("/me/notification-settings", rs.PutNotificationSettings)
		api.GET("/me/notification-settings", rs.GetNotificationSettings)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
