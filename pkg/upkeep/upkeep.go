package upkeep

import (
	"time"

	"tidewatch.xyz/boat-maintenance-service/pkg/db"
	"tidewatch.xyz/boat-maintenance-service/pkg/mail"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

//go:generate mockgen -source=upkeep.go -destination=mocks/mock_upkeep.go -package=mocks

type IAlert interface {
	GenerateAlerts(boatID string, now time.Time) ([]models.Alert, error)
	RankAlerts(alerts []models.Alert) []models.Alert
}

type ISchedule interface {
	DismissAlert(componentID string, alertType models.AlertType, now time.Time) (*models.Component, error)
	CreateLog(componentID string, entry *models.MaintenanceLog, now time.Time) (*models.Component, error)
}

type IDigest interface {
	RunDigest(now time.Time) (*models.DigestResult, error)
}

type IBoat interface {
	HasAccess(boatID string, userID string) (bool, error)
	GetBoat(boatID string) (*models.Boat, error)
	BoatsForUser(userID string) ([]models.Boat, error)
	OwnedBoats(userID string) ([]models.Boat, error)
	SpendSummary(boatID string) (*models.SpendSummary, error)
}

type Upkeep struct {
	Db         db.DB
	Thresholds Thresholds
	Mailer     mail.Sender

	Alert    IAlert
	Schedule ISchedule
	Digest   IDigest
	Boat     IBoat
}

type ServiceOpts struct {
	Alert    IAlert
	Schedule ISchedule
	Digest   IDigest
	Boat     IBoat
}

func (u *Upkeep) WithServices(opts ServiceOpts) *Upkeep {
	if opts.Alert != nil {
		u.Alert = opts.Alert
	}
	if opts.Schedule != nil {
		u.Schedule = opts.Schedule
	}
	if opts.Digest != nil {
		u.Digest = opts.Digest
	}
	if opts.Boat != nil {
		u.Boat = opts.Boat
	}
	return u
}
