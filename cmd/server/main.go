package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
	"tidewatch.xyz/boat-maintenance-service/pkg/db"
	upkeepHttp "tidewatch.xyz/boat-maintenance-service/pkg/http"
	"tidewatch.xyz/boat-maintenance-service/pkg/mail"
	"tidewatch.xyz/boat-maintenance-service/pkg/upkeep"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	upkeepDbType := os.Getenv(common.EnvKeyUpkeepDBType)
	switch upkeepDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown UPKEEP_DB_TYPE: " + upkeepDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyUpkeepHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyUpkeepDefaultRate), 64); err != nil {
		log.Fatal("Invalid UPKEEP_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyUpkeepDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid UPKEEP_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	jwtSecret := os.Getenv(common.EnvKeyUpkeepJwtSecret)
	if jwtSecret == "" {
		log.Fatal("UPKEEP_JWT_SECRET not set in .env")
	}

	cronSecret := os.Getenv(common.EnvKeyUpkeepCronSecret)
	if cronSecret == "" {
		log.Fatal("CRON_SECRET not set in .env")
	}

	logger := common.GetLogger()

	core := upkeep.Upkeep{
		Db:         *dbInstance,
		Thresholds: upkeep.ThresholdsFromEnv(),
		Mailer:     mail.NewSMTPSender(mail.SMTPConfigFromEnv()),
	}
	core.WithServices(upkeep.ServiceOpts{
		Alert:    core.GetIAlert(),
		Schedule: core.GetISchedule(),
		Digest:   core.GetIDigest(),
		Boat:     core.GetIBoat(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &upkeepHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: upkeep.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		JwtSecret:        []byte(jwtSecret),
		CronSecret:       cronSecret,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
