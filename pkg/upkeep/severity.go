package upkeep

import (
	"os"
	"strconv"

	constant "tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
)

// Date policy is fixed product behavior; the windows double as the default
// inclusion bounds for the interactive scan.
const (
	DateUrgentWindowDays = 3
	DateAlertWindowDays  = 30
)

// Thresholds holds the hours-axis severity cutoffs. Unlike the date policy
// these are operator configuration, loaded from env with product defaults.
type Thresholds struct {
	HoursUrgent   int
	HoursUpcoming int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HoursUrgent:   10,
		HoursUpcoming: 50,
	}
}

func ThresholdsFromEnv() Thresholds {
	th := DefaultThresholds()
	if v, err := strconv.Atoi(os.Getenv(constant.EnvKeyUpkeepHoursUrgent)); err == nil && v > 0 {
		th.HoursUrgent = v
	}
	if v, err := strconv.Atoi(os.Getenv(constant.EnvKeyUpkeepHoursUpcoming)); err == nil && v > 0 {
		th.HoursUpcoming = v
	}
	return th
}

// ClassifySeverity maps whole days until a due date to a severity tier.
// Pure: no clock, no I/O.
func ClassifySeverity(daysUntilDue int) models.Severity {
	switch {
	case daysUntilDue < 0:
		return models.SeverityOverdue
	case daysUntilDue <= DateUrgentWindowDays:
		return models.SeverityUrgent
	case daysUntilDue <= DateAlertWindowDays:
		return models.SeverityUpcoming
	default:
		return models.SeverityInfo
	}
}

// ClassifyHoursSeverity is the hours-axis counterpart of ClassifySeverity.
func ClassifyHoursSeverity(hoursRemaining int, th Thresholds) models.Severity {
	switch {
	case hoursRemaining < 0:
		return models.SeverityOverdue
	case hoursRemaining <= th.HoursUrgent:
		return models.SeverityUrgent
	case hoursRemaining <= th.HoursUpcoming:
		return models.SeverityUpcoming
	default:
		return models.SeverityInfo
	}
}
