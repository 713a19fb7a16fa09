package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	_ "tidewatch.xyz/boat-maintenance-service/pkg/testing"
	"tidewatch.xyz/boat-maintenance-service/pkg/upkeep/mocks"

	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/db"
	"tidewatch.xyz/boat-maintenance-service/pkg/models"
	"tidewatch.xyz/boat-maintenance-service/pkg/upkeep"
)

var testJwtSecret = []byte("test-secret")

const testCronSecret = "test-cron-secret"

func setupTestServer() *RestfulServer {
	core := upkeep.Upkeep{
		Db:         *db.GetInstance(db.UseMemorySqliteDialector()),
		Thresholds: upkeep.DefaultThresholds(),
	}
	core.WithServices(upkeep.ServiceOpts{
		Alert:    core.GetIAlert(),
		Schedule: core.GetISchedule(),
		Digest:   core.GetIDigest(),
		Boat:     core.GetIBoat(),
	})

	rs := &RestfulServer{
		Server:     gin.Default(),
		Core:       &core,
		JwtSecret:  testJwtSecret,
		CronSecret: testCronSecret,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = upkeep.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func signTestToken(t *testing.T, userID string) string {
	token, err := SignToken(testJwtSecret, UserClaims{
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   "Test Skipper",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return token
}

func authedRequest(t *testing.T, method string, path string, userID string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
	return req
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		// no token
		req := httptest.NewRequest("GET", "/api/boats", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		// garbage token
		req := httptest.NewRequest("GET", "/api/boats", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		// token signed with the wrong key
		wrong, err := SignToken([]byte("other-secret"), UserClaims{
			UserID: uuid.NewString(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/api/boats", nil)
		req.Header.Set("Authorization", "Bearer "+wrong)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestCreateBoatAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	userID := uuid.NewString()

	// Create a boat
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", userID, BoatRequest{
		Name:      "Restless",
		MakeModel: "Catalina 36",
		Year:      1999,
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	var boat models.Boat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boat))
	assert.Equal(t, userID, boat.OwnerID)

	// Add an overdue component
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats/"+boat.ID+"/components", userID, ComponentRequest{
		Name:            "Engine",
		NextServiceDate: "2020-01-01",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	// Alerts for the owner
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID+"/alerts", userID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Alerts []models.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, models.SeverityOverdue, resp.Alerts[0].Severity)
	assert.Equal(t, models.AlertTypeMaintenanceDate, resp.Alerts[0].Type)

	// Another user sees 404, not 403
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID+"/alerts", uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing boat is also 404
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+uuid.NewString()+"/alerts", userID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrewAccess(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ownerID := uuid.NewString()
	crewID := uuid.NewString()

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", ownerID, BoatRequest{Name: "Shared Boat"}))
	require.Equal(t, http.StatusCreated, w.Code)
	var boat models.Boat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boat))

	// Crew member cannot see the boat before being added
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID, crewID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Crew member cannot add themselves
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats/"+boat.ID+"/crew", crewID, CrewRequest{UserID: crewID}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Owner adds the crew member
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats/"+boat.ID+"/crew", ownerID, CrewRequest{UserID: crewID}))
	require.Equal(t, http.StatusCreated, w.Code)

	// Now the crew member can see the boat
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID, crewID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// And it appears in their boat list
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats", crewID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Boats []models.Boat `json:"boats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Boats, 1)
	assert.Equal(t, boat.ID, listResp.Boats[0].ID)
}

func TestDismissAlertEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	userID := uuid.NewString()

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", userID, BoatRequest{Name: "Dismissal"}))
	require.Equal(t, http.StatusCreated, w.Code)
	var boat models.Boat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boat))

	interval := 90
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats/"+boat.ID+"/components", userID, ComponentRequest{
		Name:                "Engine",
		NextServiceDate:     "2020-01-01",
		ServiceIntervalDays: &interval,
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var comp models.Component
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comp))

	// invalid alert type is rejected before touching the component
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/components/"+comp.ID+"/dismiss-alert", userID,
		DismissAlertRequest{AlertType: "document_expiry"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/components/"+comp.ID+"/dismiss-alert", userID,
		DismissAlertRequest{AlertType: string(models.AlertTypeMaintenanceDate)}))
	require.Equal(t, http.StatusOK, w.Code)

	var dismissResp struct {
		Component models.Component `json:"component"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dismissResp))
	require.NotNil(t, dismissResp.Component.NextServiceDate)
	assert.True(t, dismissResp.Component.NextServiceDate.After(time.Now()),
		"next service date should be pushed past today")

	// other users cannot dismiss
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/components/"+comp.ID+"/dismiss-alert", uuid.NewString(),
		DismissAlertRequest{AlertType: string(models.AlertTypeMaintenanceDate)}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMaintenanceLogEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	userID := uuid.NewString()

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", userID, BoatRequest{Name: "Logbook"}))
	require.Equal(t, http.StatusCreated, w.Code)
	var boat models.Boat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boat))

	interval := 30
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats/"+boat.ID+"/components", userID, ComponentRequest{
		Name:                "Impeller",
		ServiceIntervalDays: &interval,
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var comp models.Component
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comp))

	{
		// bad date format rejected
		w = httptest.NewRecorder()
		rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/components/"+comp.ID+"/logs", userID,
			MaintenanceLogRequest{DateOfService: "01/15/2024"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	cost := 120.50
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/components/"+comp.ID+"/logs", userID,
		MaintenanceLogRequest{
			DateOfService: "2024-01-15",
			Description:   "Replaced impeller",
			Cost:          &cost,
		}))
	require.Equal(t, http.StatusCreated, w.Code)

	var logResp struct {
		Component models.Component `json:"component"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logResp))
	require.NotNil(t, logResp.Component.LastServiceDate)
	require.NotNil(t, logResp.Component.NextServiceDate)
	assert.Equal(t, "2024-02-14", logResp.Component.NextServiceDate.Format("2006-01-02"))

	// the spend rollup picks up the logged cost
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID+"/spend", userID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.SpendSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 120.50, summary.Total)
}

func TestGetBoatAlerts_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	userID := uuid.NewString()

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", userID, BoatRequest{Name: "Faulty"}))
	require.Equal(t, http.StatusCreated, w.Code)
	var boat models.Boat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boat))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAlert := mocks.NewMockIAlert(ctrl)
	rs.Core.Alert = mockIAlert
	mockIAlert.EXPECT().
		GenerateAlerts(gomock.Eq(boat.ID), gomock.Any()).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats/"+boat.ID+"/alerts", userID, nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNotificationSettingsUpsert(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	userID := uuid.NewString()

	{
		// nothing stored yet
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/me/notification-settings", userID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	days := 7
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "PUT", "/api/me/notification-settings", userID,
		NotificationSettingsRequest{
			Enabled:              true,
			NotifyMaintenanceDue: true,
			AdvanceNoticeDays:    &days,
		}))
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.NotificationSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, 7, settings.AdvanceNoticeDays)
	assert.True(t, settings.NotifyMaintenanceDue)

	// second PUT replaces the stored row
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "PUT", "/api/me/notification-settings", userID,
		NotificationSettingsRequest{
			Enabled:              true,
			NotifyDocumentExpiry: true,
			DigestEmail:          "shore@example.com",
		}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/me/notification-settings", userID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.True(t, settings.NotifyDocumentExpiry)
	assert.False(t, settings.NotifyMaintenanceDue)
	assert.Equal(t, "shore@example.com", settings.DigestEmail)

	// the user row is upserted from the verified claims
	var user models.User
	require.NoError(t, rs.Core.Db.Conn.First(&user, "id = ?", userID).Error)
	assert.Equal(t, userID+"@example.com", user.Email)
}

func TestRunNotificationsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIDigest := mocks.NewMockIDigest(ctrl)
	rs.Core.Digest = mockIDigest

	{
		// no secret
		req := httptest.NewRequest("GET", "/api/cron/notifications", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		// wrong secret
		req := httptest.NewRequest("GET", "/api/cron/notifications", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		mockIDigest.EXPECT().
			RunDigest(gomock.Any()).
			Return(&models.DigestResult{Message: "digest run complete: 1/1 sent", Sent: 1, Attempted: 1}, nil).
			Times(1)

		req := httptest.NewRequest("GET", "/api/cron/notifications", nil)
		req.Header.Set("Authorization", "Bearer "+testCronSecret)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result models.DigestResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Sent)
	}

	{
		// a server configured without the secret accepts no one
		unconfigured := setupTestServer()
		unconfigured.CronSecret = ""
		req := httptest.NewRequest("GET", "/api/cron/notifications", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()
		unconfigured.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func setupTestServerWithLimiter(limiter *upkeep.RateLimiterStore) *RestfulServer {
	rs := setupTestServer()
	rs.RateLimiterStore = limiter
	return rs
}

func TestRequestsWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(upkeep.NewRateLimiterStore(2, 2))

	userID := uuid.NewString()

	// Simulate 3 requests in quick succession — only 2 should be allowed
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats", userID, nil))

		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// a different user has an independent bucket
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats", uuid.NewString(), nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLimiterBlocksEverything(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(upkeep.NewRateLimiterStore(0, 0))

	userID := uuid.NewString()

	{
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, authedRequest(t, "POST", "/api/boats", userID, BoatRequest{Name: "Blocked"}))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, authedRequest(t, "GET", "/api/boats", userID, nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
}
