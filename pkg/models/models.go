package models

import "time"

type Severity string

const (
	SeverityOverdue  Severity = "overdue"
	SeverityUrgent   Severity = "urgent"
	SeverityUpcoming Severity = "upcoming"
	SeverityInfo     Severity = "info"
)

// Rank gives the sort ordinal of a severity, most urgent first.
func (s Severity) Rank() int {
	switch s {
	case SeverityOverdue:
		return 0
	case SeverityUrgent:
		return 1
	case SeverityUpcoming:
		return 2
	case SeverityInfo:
		return 3
	}
	return 4
}

type AlertType string

const (
	AlertTypeMaintenanceDate  AlertType = "maintenance_date"
	AlertTypeMaintenanceHours AlertType = "maintenance_hours"
	AlertTypeDocumentExpiry   AlertType = "document_expiry"
	AlertTypeHealthCheck      AlertType = "health_check"
)

// Alert is computed, never persisted: it is always reconstructible from its
// source record plus "now". The ID is derived from the source record so
// clients can dedupe and locally dismiss without a server-assigned identity.
type Alert struct {
	ID            string    `json:"id"`
	Type          AlertType `json:"type"`
	Severity      Severity  `json:"severity"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueDate       string    `json:"dueDate,omitempty"` // ISO calendar date, 2006-01-02
	DueHours      *int      `json:"dueHours,omitempty"`
	CurrentHours  *int      `json:"currentHours,omitempty"`
	ComponentID   string    `json:"componentId,omitempty"`
	ComponentName string    `json:"componentName,omitempty"`
	DocumentID    string    `json:"documentId,omitempty"`
	BoatID        string    `json:"boatId"`
	BoatName      string    `json:"boatName"`
}

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Email string `gorm:"index" json:"email"`
	Name  string `json:"name"`
}

type NotificationSettings struct {
	UserID               string `gorm:"primaryKey" json:"userId"`
	Enabled              bool   `json:"enabled"`
	NotifyDocumentExpiry bool   `json:"notifyDocumentExpiry"`
	NotifyMaintenanceDue bool   `json:"notifyMaintenanceDue"`
	NotifyHoursThreshold bool   `json:"notifyHoursThreshold"`
	AdvanceNoticeDays    int    `gorm:"default:14" json:"advanceNoticeDays"`
	DigestEmail          string `json:"digestEmail"`
}

type Boat struct {
	ID        string `gorm:"primaryKey" json:"id"`
	OwnerID   string `gorm:"index" json:"ownerId"`
	Name      string `json:"name"`
	MakeModel string `json:"makeModel"`
	Year      int    `json:"year"`

	Components      []Component       `gorm:"foreignKey:BoatID;references:ID" json:"-"`
	Documents       []Document        `gorm:"foreignKey:BoatID;references:ID" json:"-"`
	SafetyEquipment []SafetyEquipment `gorm:"foreignKey:BoatID;references:ID" json:"-"`
}

type CrewMember struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	BoatID string `gorm:"index:idx_crew_boat_user,unique" json:"boatId"`
	UserID string `gorm:"index:idx_crew_boat_user,unique" json:"userId"`
}

// Component tracks a boat subsystem on a date axis and/or an hours axis. The
// two axes are independent: either, both, or neither may be scheduled.
type Component struct {
	ID                   string     `gorm:"primaryKey" json:"id"`
	BoatID               string     `gorm:"index" json:"boatId"`
	Name                 string     `json:"name"`
	Category             string     `json:"category"`
	NextServiceDate      *time.Time `json:"nextServiceDate"`
	NextServiceHours     *int       `json:"nextServiceHours"`
	CurrentHours         *int       `json:"currentHours"`
	ServiceIntervalDays  *int       `json:"serviceIntervalDays"`
	ServiceIntervalHours *int       `json:"serviceIntervalHours"`
	LastServiceDate      *time.Time `json:"lastServiceDate"`
	LastServiceHours     *int       `json:"lastServiceHours"`
	Notes                string     `json:"notes"`
}

type Document struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	BoatID       string     `gorm:"index" json:"boatId"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	ReminderDays int        `gorm:"default:30" json:"reminderDays"`
}

// SafetyEquipment carries two independently optional dates: the item itself
// expiring, and the item coming due for inspection. They are separate
// real-world events and each produces its own alert.
type SafetyEquipment struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	BoatID          string     `gorm:"index" json:"boatId"`
	Type            string     `json:"type"`
	TypeOther       string     `json:"typeOther"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	NextServiceDate *time.Time `json:"nextServiceDate"`
}

var safetyEquipmentLabels = map[string]string{
	"life_raft":         "Life Raft",
	"epirb":             "EPIRB",
	"fire_extinguisher": "Fire Extinguisher",
	"flares":            "Flares",
	"life_jackets":      "Life Jackets",
	"first_aid_kit":     "First Aid Kit",
	"man_overboard":     "Man Overboard Gear",
}

// DisplayName resolves the fixed label for the equipment type; "other" falls
// back to the free-text TypeOther field.
func (e SafetyEquipment) DisplayName() string {
	if e.Type == "other" && e.TypeOther != "" {
		return e.TypeOther
	}
	if label, ok := safetyEquipmentLabels[e.Type]; ok {
		return label
	}
	return e.Type
}

type ComponentSpend struct {
	ComponentID   string  `json:"componentId"`
	ComponentName string  `json:"componentName"`
	LogCount      int     `json:"logCount"`
	Total         float64 `json:"total"`
}

type SpendSummary struct {
	BoatID     string           `json:"boatId"`
	Total      float64          `json:"total"`
	Components []ComponentSpend `json:"components"`
}

type UserDigestResult struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	AlertCount int    `json:"alertCount"`
	Sent       bool   `json:"sent"`
	Error      string `json:"error,omitempty"`
}

type DigestResult struct {
	Message     string             `json:"message"`
	Sent        int                `json:"sent"`
	Attempted   int                `json:"attempted"`
	TotalAlerts int                `json:"totalAlerts"`
	Results     []UserDigestResult `json:"results"`
}

type MaintenanceLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ComponentID    string    `gorm:"index" json:"componentId"`
	DateOfService  time.Time `json:"dateOfService"`
	HoursAtService *int      `json:"hoursAtService"`
	Description    string    `json:"description"`
	Cost           *float64  `json:"cost"`
	CreatedAt      time.Time `json:"createdAt"`
}
