package upkeep

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

// AdvanceDate projects the next due date one interval forward from `from`.
// Nil interval means no recurring schedule, so the next due point is nil.
//
// Every call site that forward-schedules a component (dismissal and
// maintenance-log creation) goes through here, so the live scan and the
// log-driven schedule can never disagree on the arithmetic.
func AdvanceDate(from time.Time, intervalDays *int) *time.Time {
	if intervalDays == nil {
		return nil
	}
	next := common.StartOfDay(from).AddDate(0, 0, *intervalDays)
	return &next
}

// AdvanceHours is the hours-axis counterpart of AdvanceDate.
func AdvanceHours(at int, intervalHours *int) *int {
	if intervalHours == nil {
		return nil
	}
	next := at + *intervalHours
	return &next
}

// dismissAlert re-arms a maintenance alert by advancing the component's due
// point one interval forward from today (not from the old due point). With no
// interval configured the corresponding next-due field is cleared: the
// schedule is removed rather than left permanently overdue, and nothing
// invalid is ever written.
//
// Expiry alerts have no recurring interval and no server-side dismissal path;
// hiding them is a client concern.
func (u *Upkeep) dismissAlert(componentID string, alertType models.AlertType, now time.Time) (*models.Component, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameUpkeepCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	var comp models.Component
	if err := u.Db.Conn.First(&comp, "id = ?", componentID).Error; err != nil {
		return nil, err
	}

	switch alertType {
	case models.AlertTypeMaintenanceDate:
		comp.NextServiceDate = AdvanceDate(now, comp.ServiceIntervalDays)
	case models.AlertTypeMaintenanceHours:
		current := 0
		if comp.CurrentHours != nil {
			current = *comp.CurrentHours
		}
		comp.NextServiceHours = AdvanceHours(current, comp.ServiceIntervalHours)
	default:
		return nil, fmt.Errorf("alert type %q has no dismissable schedule", alertType)
	}

	if err := u.Db.Conn.Save(&comp).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert dismissed, schedule advanced",
		zap.String("component_id", comp.ID),
		zap.String("alert_type", string(alertType)),
		zap.Reflect("component", comp))

	return &comp, nil
}

// createLog records a performed service and forward-schedules the component
// from the service point: next date from the date of service, next hours from
// the hours at service. A missing interval clears the matching next-due field
// to null instead of leaving it stale.
func (u *Upkeep) createLog(componentID string, entry *models.MaintenanceLog, now time.Time) (*models.Component, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameUpkeepCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	var comp models.Component
	if err := u.Db.Conn.First(&comp, "id = ?", componentID).Error; err != nil {
		return nil, err
	}

	logEntry := models.MaintenanceLog{
		ComponentID:    comp.ID,
		DateOfService:  common.StartOfDay(entry.DateOfService),
		HoursAtService: entry.HoursAtService,
		Description:    entry.Description,
		Cost:           entry.Cost,
		CreatedAt:      now,
	}

	if err := u.Db.Conn.Create(&logEntry).Error; err != nil {
		return nil, err
	}

	serviceDate := logEntry.DateOfService
	comp.LastServiceDate = &serviceDate
	comp.NextServiceDate = AdvanceDate(serviceDate, comp.ServiceIntervalDays)

	if entry.HoursAtService != nil {
		comp.LastServiceHours = entry.HoursAtService
		comp.NextServiceHours = AdvanceHours(*entry.HoursAtService, comp.ServiceIntervalHours)
		if comp.CurrentHours == nil || *comp.CurrentHours < *entry.HoursAtService {
			comp.CurrentHours = entry.HoursAtService
		}
	}

	if err := u.Db.Conn.Save(&comp).Error; err != nil {
		return nil, err
	}

	logger.Info("Maintenance logged, schedule advanced",
		zap.String("component_id", comp.ID),
		zap.Reflect("log", logEntry),
		zap.Reflect("component", comp))

	return &comp, nil
}

type IScheduleImpl struct {
	upkeep *Upkeep
}

func (is *IScheduleImpl) DismissAlert(componentID string, alertType models.AlertType, now time.Time) (*models.Component, error) {
	return is.upkeep.dismissAlert(componentID, alertType, now)
}

func (is *IScheduleImpl) CreateLog(componentID string, entry *models.MaintenanceLog, now time.Time) (*models.Component, error) {
	return is.upkeep.createLog(componentID, entry, now)
}

func (u *Upkeep) GetISchedule() ISchedule {
	return &IScheduleImpl{upkeep: u}
}
