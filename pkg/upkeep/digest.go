package upkeep

import (
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/mail"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

type userWithSettings struct {
	models.User
	models.NotificationSettings
}

// runDigest scans every notification-enabled user's owned boats with that
// user's advance-notice window and sends at most one email per user. A send
// failure is recorded against that user and never stops the batch.
func (u *Upkeep) runDigest(now time.Time) (*models.DigestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameUpkeepCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDigest),
	)

	var recipients []userWithSettings
	err := u.Db.Conn.Model(&models.NotificationSettings{}).
		Select("users.*, notification_settings.*").
		Joins("JOIN users ON users.id = notification_settings.user_id").
		Where("notification_settings.enabled = ?", true).
		Scan(&recipients).Error
	if err != nil {
		return nil, err
	}

	result := models.DigestResult{Results: []models.UserDigestResult{}}

	for _, recipient := range recipients {
		userResult := u.digestForUser(&recipient, now, logger)
		if userResult == nil {
			continue // nothing due, no email
		}

		result.Attempted++
		result.TotalAlerts += userResult.AlertCount
		if userResult.Sent {
			result.Sent++
		}
		result.Results = append(result.Results, *userResult)
	}

	result.Message = fmt.Sprintf("digest run complete: %d/%d sent", result.Sent, result.Attempted)
	logger.Info("Digest run complete",
		zap.Int("sent", result.Sent),
		zap.Int("attempted", result.Attempted),
		zap.Int("total_alerts", result.TotalAlerts))

	return &result, nil
}

// digestForUser aggregates one user's qualifying alerts across all owned
// boats. Returns nil when the user has nothing due.
func (u *Upkeep) digestForUser(recipient *userWithSettings, now time.Time, logger *zap.Logger) *models.UserDigestResult {
	advanceDays := recipient.AdvanceNoticeDays
	if advanceDays <= 0 {
		advanceDays = 14
	}

	opts := scanOptions{
		dateWindowDays: advanceDays,
		docWindowDays:  &advanceDays,
		hoursWindow:    u.Thresholds.HoursUpcoming,
		includeDates:   recipient.NotifyMaintenanceDue,
		includeDocs:    recipient.NotifyDocumentExpiry,
		includeHours:   recipient.NotifyHoursThreshold,
	}

	boats, err := u.ownedBoats(recipient.UserID)
	if err != nil {
		logger.Error("Failed to load boats for digest",
			zap.String("user_id", recipient.UserID), zap.Error(err))
		return &models.UserDigestResult{UserID: recipient.UserID, Error: err.Error()}
	}

	var all []models.Alert
	for i := range boats {
		alerts, err := u.scanBoat(&boats[i], now, opts)
		if err != nil {
			logger.Error("Failed to scan boat for digest",
				zap.String("user_id", recipient.UserID),
				zap.String("boat_id", boats[i].ID), zap.Error(err))
			return &models.UserDigestResult{UserID: recipient.UserID, Error: err.Error()}
		}
		all = append(all, alerts...)
	}

	if len(all) == 0 {
		return nil
	}

	all = rankAlerts(all)

	to := recipient.DigestEmail
	if to == "" {
		to = recipient.Email
	}

	userResult := models.UserDigestResult{
		UserID:     recipient.UserID,
		Email:      to,
		AlertCount: len(all),
	}

	msg := mail.Message{
		To:      to,
		Subject: fmt.Sprintf("Maintenance digest: %d items need attention", len(all)),
		HTML:    buildDigestHTML(recipient.Name, all),
	}

	if err := u.Mailer.Send(msg); err != nil {
		logger.Error("Failed to send digest email",
			zap.String("user_id", recipient.UserID),
			zap.String("to", to), zap.Error(err))
		userResult.Error = err.Error()
		return &userResult
	}

	logger.Info("Digest email sent",
		zap.String("user_id", recipient.UserID),
		zap.String("to", to),
		zap.Int("alert_count", len(all)))
	userResult.Sent = true
	return &userResult
}

func severityColor(s models.Severity) string {
	switch s {
	case models.SeverityOverdue:
		return "#dc3545"
	case models.SeverityUrgent:
		return "#fd7e14"
	case models.SeverityUpcoming:
		return "#ffc107"
	case models.SeverityInfo:
		return "#17a2b8"
	}
	return "#6c757d"
}

func buildDigestHTML(name string, alerts []models.Alert) string {
	var rows strings.Builder
	for _, a := range alerts {
		rows.WriteString(fmt.Sprintf(`
        <tr>
            <td style="padding: 8px; border-bottom: 1px solid #dee2e6;">
                <span style="background-color: %s; color: white; padding: 2px 8px; border-radius: 3px; font-size: 12px;">%s</span>
            </td>
            <td style="padding: 8px; border-bottom: 1px solid #dee2e6;">%s</td>
            <td style="padding: 8px; border-bottom: 1px solid #dee2e6;">%s</td>
            <td style="padding: 8px; border-bottom: 1px solid #dee2e6;">%s</td>
        </tr>`,
			severityColor(a.Severity),
			html.EscapeString(string(a.Severity)),
			html.EscapeString(a.BoatName),
			html.EscapeString(a.Title),
			html.EscapeString(a.Description)))
	}

	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0;">
    <div style="background-color: #0d6efd; color: white; padding: 20px; border-radius: 5px;">
        <h2 style="margin: 0;">Upcoming maintenance for your boats</h2>
    </div>
    <div style="padding: 20px; background-color: #f8f9fa; margin-top: 10px; border-radius: 5px;">
        <p>Hi %s,</p>
        <p>The following items are due or coming due:</p>
        <table style="width: 100%%; border-collapse: collapse; background-color: white;">
            <tr>
                <th style="text-align: left; padding: 8px;">Severity</th>
                <th style="text-align: left; padding: 8px;">Boat</th>
                <th style="text-align: left; padding: 8px;">Item</th>
                <th style="text-align: left; padding: 8px;">Detail</th>
            </tr>%s
        </table>
    </div>
    <div style="margin-top: 20px; padding: 10px; font-size: 12px; color: #6c757d;">
        Tidewatch Boat Maintenance - Automated Digest
    </div>
</body>
</html>
`, html.EscapeString(name), rows.String())
}

type IDigestImpl struct {
	upkeep *Upkeep
}

func (id *IDigestImpl) RunDigest(now time.Time) (*models.DigestResult, error) {
	return id.upkeep.runDigest(now)
}

func (u *Upkeep) GetIDigest() IDigest {
	return &IDigestImpl{upkeep: u}
}
