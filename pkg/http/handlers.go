package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

// caller pulls the authenticated user and applies the per-user limiter.
// Returns false after writing the response when the request cannot proceed.
func (rs *RestfulServer) caller(c *gin.Context) (CurrentUser, bool) {
	cu, ok := GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return CurrentUser{}, false
	}

	if !rs.CheckUserLimiter(cu.ID) {
		c.Status(http.StatusTooManyRequests)
		return CurrentUser{}, false
	}

	return cu, true
}

// requireBoatAccess answers 404 for missing and inaccessible boats alike so
// responses never reveal whether a boat id exists.
func (rs *RestfulServer) requireBoatAccess(c *gin.Context, boatID string, userID string) bool {
	ok, err := rs.Core.Boat.HasAccess(boatID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
		return false
	}
	return true
}

// componentForCaller resolves a component id to its record, enforcing access
// through the owning boat.
func (rs *RestfulServer) componentForCaller(c *gin.Context, componentID string, userID string) (*models.Component, bool) {
	var comp models.Component
	if err := rs.Core.Db.Conn.First(&comp, "id = ?", componentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		}
		return nil, false
	}

	ok, err := rs.Core.Boat.HasAccess(comp.BoatID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return nil, false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return nil, false
	}

	return &comp, true
}

func (rs *RestfulServer) GetBoatAlerts(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	alerts, err := rs.Core.Alert.GenerateAlerts(boatID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": rs.Core.Alert.RankAlerts(alerts)})
}

type DismissAlertRequest struct {
	AlertType string `json:"alertType"`
}

var dismissAlertRequestSchema = z.Struct(z.Shape{
	"AlertType": z.String().Required(),
})

func (rs *RestfulServer) DismissAlert(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req DismissAlertRequest
	if err := dismissAlertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alertType := models.AlertType(req.AlertType)
	if alertType != models.AlertTypeMaintenanceDate && alertType != models.AlertTypeMaintenanceHours {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alertType must be maintenance_date or maintenance_hours"})
		return
	}

	comp, ok := rs.componentForCaller(c, c.Param("id"), cu.ID)
	if !ok {
		return
	}

	updated, err := rs.Core.Schedule.DismissAlert(comp.ID, alertType, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": updated})
}

type MaintenanceLogRequest struct {
	DateOfService  string   `json:"dateOfService"`
	HoursAtService *int     `json:"hoursAtService"`
	Description    string   `json:"description"`
	Cost           *float64 `json:"cost"`
}

var maintenanceLogRequestSchema = z.Struct(z.Shape{
	"DateOfService":  z.String().Required(),
	"HoursAtService": z.Ptr(z.Int()),
	"Description":    z.String().Optional(),
	"Cost":           z.Ptr(z.Float64()),
})

func (rs *RestfulServer) CreateMaintenanceLog(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req MaintenanceLogRequest
	if err := maintenanceLogRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	serviceDate, err := time.Parse("2006-01-02", req.DateOfService)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfService must be a YYYY-MM-DD date"})
		return
	}

	comp, ok := rs.componentForCaller(c, c.Param("id"), cu.ID)
	if !ok {
		return
	}

	entry := models.MaintenanceLog{
		DateOfService:  serviceDate,
		HoursAtService: req.HoursAtService,
		Description:    req.Description,
		Cost:           req.Cost,
	}

	updated, err := rs.Core.Schedule.CreateLog(comp.ID, &entry, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"component": updated})
}

func (rs *RestfulServer) GetSpendSummary(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	summary, err := rs.Core.Boat.SpendSummary(boatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RunNotifications is the scheduled digest entry point. It authenticates with
// the operator-configured shared secret, not a user token.
func (rs *RestfulServer) RunNotifications(c *gin.Context) {
	if rs.CronSecret == "" || c.GetHeader("Authorization") != "Bearer "+rs.CronSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := rs.Core.Digest.RunDigest(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, result)
}
