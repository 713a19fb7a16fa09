package upkeep

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

const isoDate = "2006-01-02"

// scanOptions parameterizes one alert scan. The interactive API uses the
// defaults; the digest swaps in the user's advance-notice window and channel
// preferences.
type scanOptions struct {
	dateWindowDays int  // lookahead for maintenance/safety service dates
	docWindowDays  *int // nil: each document's own ReminderDays applies
	hoursWindow    int
	includeDates   bool
	includeDocs    bool
	includeHours   bool
}

func (u *Upkeep) defaultScanOptions() scanOptions {
	return scanOptions{
		dateWindowDays: DateAlertWindowDays,
		docWindowDays:  nil,
		hoursWindow:    u.Thresholds.HoursUpcoming,
		includeDates:   true,
		includeDocs:    true,
		includeHours:   true,
	}
}

func dueDatePhrase(daysUntil int, due time.Time) string {
	switch {
	case daysUntil < 0:
		return fmt.Sprintf("overdue by %d days (was due %s)", -daysUntil, due.Format(isoDate))
	case daysUntil == 0:
		return fmt.Sprintf("due today (%s)", due.Format(isoDate))
	default:
		return fmt.Sprintf("due in %d days (%s)", daysUntil, due.Format(isoDate))
	}
}

// scanBoat derives the current alerts for one boat. Output order follows the
// scan phases (components, documents, safety equipment) but carries no
// guarantee; callers re-sort through RankAlerts.
func (u *Upkeep) scanBoat(boat *models.Boat, now time.Time, opts scanOptions) ([]models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameUpkeepCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	today := common.StartOfDay(now)
	alerts := []models.Alert{}

	var components []models.Component
	if err := u.Db.Conn.Where("boat_id = ?", boat.ID).Find(&components).Error; err != nil {
		return nil, err
	}

	for _, comp := range components {
		// Date and hours axes fire independently; a component tracking both
		// can produce two alerts.
		if opts.includeDates && comp.NextServiceDate != nil {
			daysUntil := common.DaysBetween(today, *comp.NextServiceDate)
			if daysUntil <= opts.dateWindowDays {
				alert := models.Alert{
					ID:            "comp-date-" + comp.ID,
					Type:          models.AlertTypeMaintenanceDate,
					Severity:      ClassifySeverity(daysUntil),
					Title:         comp.Name,
					Description:   fmt.Sprintf("Scheduled service %s", dueDatePhrase(daysUntil, *comp.NextServiceDate)),
					DueDate:       comp.NextServiceDate.Format(isoDate),
					ComponentID:   comp.ID,
					ComponentName: comp.Name,
					BoatID:        boat.ID,
					BoatName:      boat.Name,
				}
				logger.Info("Alert found", zap.Reflect("alert", alert))
				alerts = append(alerts, alert)
			}
		}

		if opts.includeHours && comp.NextServiceHours != nil && comp.CurrentHours != nil {
			hoursUntil := *comp.NextServiceHours - *comp.CurrentHours
			if hoursUntil <= opts.hoursWindow {
				var desc string
				if hoursUntil < 0 {
					desc = fmt.Sprintf("Service overdue by %d running hours", -hoursUntil)
				} else {
					desc = fmt.Sprintf("Service due in %d running hours", hoursUntil)
				}
				alert := models.Alert{
					ID:            "comp-hours-" + comp.ID,
					Type:          models.AlertTypeMaintenanceHours,
					Severity:      ClassifyHoursSeverity(hoursUntil, u.Thresholds),
					Title:         comp.Name,
					Description:   desc,
					DueHours:      comp.NextServiceHours,
					CurrentHours:  comp.CurrentHours,
					ComponentID:   comp.ID,
					ComponentName: comp.Name,
					BoatID:        boat.ID,
					BoatName:      boat.Name,
				}
				logger.Info("Alert found", zap.Reflect("alert", alert))
				alerts = append(alerts, alert)
			}
		}
	}

	if opts.includeDocs {
		var documents []models.Document
		if err := u.Db.Conn.Where("boat_id = ? AND expiry_date IS NOT NULL", boat.ID).Find(&documents).Error; err != nil {
			return nil, err
		}

		for _, doc := range documents {
			daysUntil := common.DaysBetween(today, *doc.ExpiryDate)
			window := doc.ReminderDays
			if opts.docWindowDays != nil {
				window = *opts.docWindowDays
			}
			if daysUntil > window {
				continue
			}
			var desc string
			if daysUntil < 0 {
				desc = fmt.Sprintf("Expired %d days ago (%s)", -daysUntil, doc.ExpiryDate.Format(isoDate))
			} else {
				desc = fmt.Sprintf("Expires in %d days (%s)", daysUntil, doc.ExpiryDate.Format(isoDate))
			}
			alert := models.Alert{
				ID:          "doc-" + doc.ID,
				Type:        models.AlertTypeDocumentExpiry,
				Severity:    ClassifySeverity(daysUntil),
				Title:       doc.Title,
				Description: desc,
				DueDate:     doc.ExpiryDate.Format(isoDate),
				DocumentID:  doc.ID,
				BoatID:      boat.ID,
				BoatName:    boat.Name,
			}
			logger.Info("Alert found", zap.Reflect("alert", alert))
			alerts = append(alerts, alert)
		}
	}

	if opts.includeDates {
		var equipment []models.SafetyEquipment
		if err := u.Db.Conn.Where("boat_id = ?", boat.ID).Find(&equipment).Error; err != nil {
			return nil, err
		}

		for _, item := range equipment {
			name := item.DisplayName()

			// Expiry and inspection are distinct events on one row and are
			// evaluated separately.
			if item.ExpiryDate != nil {
				daysUntil := common.DaysBetween(today, *item.ExpiryDate)
				if daysUntil <= opts.dateWindowDays {
					var desc string
					if daysUntil < 0 {
						desc = fmt.Sprintf("Expired %d days ago (%s)", -daysUntil, item.ExpiryDate.Format(isoDate))
					} else {
						desc = fmt.Sprintf("Expires in %d days (%s)", daysUntil, item.ExpiryDate.Format(isoDate))
					}
					alert := models.Alert{
						ID:          "safety-exp-" + item.ID,
						Type:        models.AlertTypeDocumentExpiry,
						Severity:    ClassifySeverity(daysUntil),
						Title:       name,
						Description: desc,
						DueDate:     item.ExpiryDate.Format(isoDate),
						BoatID:      boat.ID,
						BoatName:    boat.Name,
					}
					logger.Info("Alert found", zap.Reflect("alert", alert))
					alerts = append(alerts, alert)
				}
			}

			if item.NextServiceDate != nil {
				daysUntil := common.DaysBetween(today, *item.NextServiceDate)
				if daysUntil <= opts.dateWindowDays {
					alert := models.Alert{
						ID:          "safety-svc-" + item.ID,
						Type:        models.AlertTypeMaintenanceDate,
						Severity:    ClassifySeverity(daysUntil),
						Title:       name,
						Description: fmt.Sprintf("Inspection %s", dueDatePhrase(daysUntil, *item.NextServiceDate)),
						DueDate:     item.NextServiceDate.Format(isoDate),
						BoatID:      boat.ID,
						BoatName:    boat.Name,
					}
					logger.Info("Alert found", zap.Reflect("alert", alert))
					alerts = append(alerts, alert)
				}
			}
		}
	}

	return alerts, nil
}

func (u *Upkeep) generateAlerts(boatID string, now time.Time) ([]models.Alert, error) {
	var boat models.Boat
	if err := u.Db.Conn.First(&boat, "id = ?", boatID).Error; err != nil {
		return nil, err
	}
	return u.scanBoat(&boat, now, u.defaultScanOptions())
}

// rankAlerts orders by severity ordinal, then by due date among alerts that
// both carry one. The sort is stable so hours-only alerts keep their
// generation order among equal-severity peers.
func rankAlerts(alerts []models.Alert) []models.Alert {
	ranked := make([]models.Alert, len(alerts))
	copy(ranked, alerts)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.DueDate != "" && b.DueDate != "" {
			return a.DueDate < b.DueDate
		}
		return false
	})
	return ranked
}

type IAlertImpl struct {
	upkeep *Upkeep
}

func (ia *IAlertImpl) GenerateAlerts(boatID string, now time.Time) ([]models.Alert, error) {
	return ia.upkeep.generateAlerts(boatID, now)
}

func (ia *IAlertImpl) RankAlerts(alerts []models.Alert) []models.Alert {
	return rankAlerts(alerts)
}

func (u *Upkeep) GetIAlert() IAlert {
	return &IAlertImpl{upkeep: u}
}
