package upkeep

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"tidewatch.xyz/boat-maintenance-service/pkg/db"
	mailmocks "tidewatch.xyz/boat-maintenance-service/pkg/mail/mocks"
)

func GetMockUpkeepWithMemorySqliteDialector(t *testing.T) (
	*gomock.Controller,
	*Upkeep,
	*mailmocks.MockSender,
) {
	ctrl := gomock.NewController(t)

	mockSender := mailmocks.NewMockSender(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	core := &Upkeep{
		Db:         *dbInstance,
		Thresholds: DefaultThresholds(),
		Mailer:     mockSender,
	}
	core.WithServices(ServiceOpts{
		Alert:    core.GetIAlert(),
		Schedule: core.GetISchedule(),
		Digest:   core.GetIDigest(),
		Boat:     core.GetIBoat(),
	})

	return ctrl, core, mockSender
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func iptr(v int) *int {
	return &v
}

func fptr(v float64) *float64 {
	return &v
}

func dptr(t time.Time) *time.Time {
	return &t
}

// daysFrom builds a midnight date the given number of days after now.
func daysFrom(now time.Time, days int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, days)
}
