package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

func parseISODate(c *gin.Context, field string, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " must be a YYYY-MM-DD date"})
		return nil, false
	}
	return &t, true
}

type BoatRequest struct {
	Name      string `json:"name"`
	MakeModel string `json:"makeModel"`
	Year      int    `json:"year"`
}

var boatRequestSchema = z.Struct(z.Shape{
	"Name":      z.String().Required(),
	"MakeModel": z.String().Optional(),
	"Year":      z.Int().Optional(),
})

func (rs *RestfulServer) CreateBoat(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req BoatRequest
	if err := boatRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	boat := models.Boat{
		ID:        uuid.NewString(),
		OwnerID:   cu.ID,
		Name:      req.Name,
		MakeModel: req.MakeModel,
		Year:      req.Year,
	}

	if err := rs.Core.Db.Conn.Create(&boat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, boat)
}

func (rs *RestfulServer) ListBoats(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boats, err := rs.Core.Boat.BoatsForUser(cu.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boats": boats})
}

func (rs *RestfulServer) GetBoat(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	boat, err := rs.Core.Boat.GetBoat(boatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, boat)
}

type CrewRequest struct {
	UserID string `json:"userId"`
}

var crewRequestSchema = z.Struct(z.Shape{
	"UserID": z.String().Required(),
})

func (rs *RestfulServer) AddCrewMember(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req CrewRequest
	if err := crewRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	boatID := c.Param("id")

	// Only the owner can grant crew access; crew cannot invite further crew.
	boat, err := rs.Core.Boat.GetBoat(boatID)
	if err != nil || boat.OwnerID != cu.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
		return
	}

	crew := models.CrewMember{BoatID: boatID, UserID: req.UserID}
	if err := rs.Core.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, crew)
}

type ComponentRequest struct {
	Name                 string `json:"name"`
	Category             string `json:"category"`
	NextServiceDate      string `json:"nextServiceDate"`
	NextServiceHours     *int   `json:"nextServiceHours"`
	CurrentHours         *int   `json:"currentHours"`
	ServiceIntervalDays  *int   `json:"serviceIntervalDays"`
	ServiceIntervalHours *int   `json:"serviceIntervalHours"`
	Notes                string `json:"notes"`
}

var componentRequestSchema = z.Struct(z.Shape{
	"Name":                 z.String().Required(),
	"Category":             z.String().Optional(),
	"NextServiceDate":      z.String().Optional(),
	"NextServiceHours":     z.Ptr(z.Int()),
	"CurrentHours":         z.Ptr(z.Int()),
	"ServiceIntervalDays":  z.Ptr(z.Int()),
	"ServiceIntervalHours": z.Ptr(z.Int()),
	"Notes":                z.String().Optional(),
})

func (rs *RestfulServer) CreateComponent(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req ComponentRequest
	if err := componentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	nextServiceDate, ok := parseISODate(c, "nextServiceDate", req.NextServiceDate)
	if !ok {
		return
	}

	comp := models.Component{
		ID:                   uuid.NewString(),
		BoatID:               boatID,
		Name:                 req.Name,
		Category:             req.Category,
		NextServiceDate:      nextServiceDate,
		NextServiceHours:     req.NextServiceHours,
		CurrentHours:         req.CurrentHours,
		ServiceIntervalDays:  req.ServiceIntervalDays,
		ServiceIntervalHours: req.ServiceIntervalHours,
		Notes:                req.Notes,
	}

	if err := rs.Core.Db.Conn.Create(&comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, comp)
}

func (rs *RestfulServer) ListComponents(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	var components []models.Component
	if err := rs.Core.Db.Conn.Where("boat_id = ?", boatID).Find(&components).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"components": components})
}

// ComponentUpdateRequest distinguishes absent fields from explicit nulls, so
// it binds through pointers instead of a zog schema.
type ComponentUpdateRequest struct {
	Name                 *string `json:"name"`
	Category             *string `json:"category"`
	NextServiceDate      *string `json:"nextServiceDate"`
	NextServiceHours     *int    `json:"nextServiceHours"`
	CurrentHours         *int    `json:"currentHours"`
	ServiceIntervalDays  *int    `json:"serviceIntervalDays"`
	ServiceIntervalHours *int    `json:"serviceIntervalHours"`
	Notes                *string `json:"notes"`
}

func (rs *RestfulServer) UpdateComponent(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req ComponentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comp, ok := rs.componentForCaller(c, c.Param("id"), cu.ID)
	if !ok {
		return
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}
	if req.Category != nil {
		comp.Category = *req.Category
	}
	if req.NextServiceDate != nil {
		next, ok := parseISODate(c, "nextServiceDate", *req.NextServiceDate)
		if !ok {
			return
		}
		comp.NextServiceDate = next
	}
	if req.NextServiceHours != nil {
		comp.NextServiceHours = req.NextServiceHours
	}
	if req.CurrentHours != nil {
		comp.CurrentHours = req.CurrentHours
	}
	if req.ServiceIntervalDays != nil {
		comp.ServiceIntervalDays = req.ServiceIntervalDays
	}
	if req.ServiceIntervalHours != nil {
		comp.ServiceIntervalHours = req.ServiceIntervalHours
	}
	if req.Notes != nil {
		comp.Notes = *req.Notes
	}

	if err := rs.Core.Db.Conn.Save(comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, comp)
}

type DocumentRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	ExpiryDate   string `json:"expiryDate"`
	ReminderDays *int   `json:"reminderDays"`
}

var documentRequestSchema = z.Struct(z.Shape{
	"Title":        z.String().Required(),
	"Category":     z.String().Optional(),
	"ExpiryDate":   z.String().Optional(),
	"ReminderDays": z.Ptr(z.Int()),
})

func (rs *RestfulServer) CreateDocument(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req DocumentRequest
	if err := documentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	expiryDate, ok := parseISODate(c, "expiryDate", req.ExpiryDate)
	if !ok {
		return
	}

	reminderDays := 30
	if req.ReminderDays != nil && *req.ReminderDays > 0 {
		reminderDays = *req.ReminderDays
	}

	doc := models.Document{
		ID:           uuid.NewString(),
		BoatID:       boatID,
		Title:        req.Title,
		Category:     req.Category,
		ExpiryDate:   expiryDate,
		ReminderDays: reminderDays,
	}

	if err := rs.Core.Db.Conn.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (rs *RestfulServer) ListDocuments(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	var docs []models.Document
	if err := rs.Core.Db.Conn.Where("boat_id = ?", boatID).Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

type SafetyEquipmentRequest struct {
	Type            string `json:"type"`
	TypeOther       string `json:"typeOther"`
	ExpiryDate      string `json:"expiryDate"`
	NextServiceDate string `json:"nextServiceDate"`
}

var safetyEquipmentRequestSchema = z.Struct(z.Shape{
	"Type":            z.String().Required(),
	"TypeOther":       z.String().Optional(),
	"ExpiryDate":      z.String().Optional(),
	"NextServiceDate": z.String().Optional(),
})

func (rs *RestfulServer) CreateSafetyEquipment(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req SafetyEquipmentRequest
	if err := safetyEquipmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	expiryDate, ok := parseISODate(c, "expiryDate", req.ExpiryDate)
	if !ok {
		return
	}
	nextServiceDate, ok := parseISODate(c, "nextServiceDate", req.NextServiceDate)
	if !ok {
		return
	}

	item := models.SafetyEquipment{
		ID:              uuid.NewString(),
		BoatID:          boatID,
		Type:            req.Type,
		TypeOther:       req.TypeOther,
		ExpiryDate:      expiryDate,
		NextServiceDate: nextServiceDate,
	}

	if err := rs.Core.Db.Conn.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (rs *RestfulServer) ListSafetyEquipment(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	boatID := c.Param("id")
	if !rs.requireBoatAccess(c, boatID, cu.ID) {
		return
	}

	var items []models.SafetyEquipment
	if err := rs.Core.Db.Conn.Where("boat_id = ?", boatID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"safetyEquipment": items})
}

type NotificationSettingsRequest struct {
	Enabled              bool   `json:"enabled"`
	NotifyDocumentExpiry bool   `json:"notifyDocumentExpiry"`
	NotifyMaintenanceDue bool   `json:"notifyMaintenanceDue"`
	NotifyHoursThreshold bool   `json:"notifyHoursThreshold"`
	AdvanceNoticeDays    *int   `json:"advanceNoticeDays"`
	DigestEmail          string `json:"digestEmail"`
}

var notificationSettingsRequestSchema = z.Struct(z.Shape{
	"Enabled":              z.Bool().Required(),
	"NotifyDocumentExpiry": z.Bool().Optional(),
	"NotifyMaintenanceDue": z.Bool().Optional(),
	"NotifyHoursThreshold": z.Bool().Optional(),
	"AdvanceNoticeDays":    z.Ptr(z.Int()),
	"DigestEmail":          z.String().Optional(),
})

// PutNotificationSettings also refreshes the caller's user row from the
// verified claims, so the digest always has a current account email.
func (rs *RestfulServer) PutNotificationSettings(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var req NotificationSettingsRequest
	if err := notificationSettingsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user := models.User{ID: cu.ID, Email: cu.Email, Name: cu.Name}
	if err := rs.Core.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	advanceNoticeDays := 14
	if req.AdvanceNoticeDays != nil && *req.AdvanceNoticeDays > 0 {
		advanceNoticeDays = *req.AdvanceNoticeDays
	}

	settings := models.NotificationSettings{
		UserID:               cu.ID,
		Enabled:              req.Enabled,
		NotifyDocumentExpiry: req.NotifyDocumentExpiry,
		NotifyMaintenanceDue: req.NotifyMaintenanceDue,
		NotifyHoursThreshold: req.NotifyHoursThreshold,
		AdvanceNoticeDays:    advanceNoticeDays,
		DigestEmail:          req.DigestEmail,
	}

	if err := rs.Core.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (rs *RestfulServer) GetNotificationSettings(c *gin.Context) {
	cu, ok := rs.caller(c)
	if !ok {
		return
	}

	var settings models.NotificationSettings
	if err := rs.Core.Db.Conn.First(&settings, "user_id = ?", cu.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "settings not found"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
