package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyUpkeepDBType string = "UPKEEP_DB_TYPE"
	EnvKeyUpkeepDbPath string = "UPKEEP_DB_PATH"

	EnvKeyUpkeepHttpHostPort string = "UPKEEP_HTTP_HOST_PORT"

	EnvKeyUpkeepDefaultRate  string = "UPKEEP_DEFAULT_RATE"
	EnvKeyUpkeepDefaultBurst string = "UPKEEP_DEFAULT_BURST"

	EnvKeyUpkeepJwtSecret  string = "UPKEEP_JWT_SECRET"
	EnvKeyUpkeepCronSecret string = "CRON_SECRET"

	EnvKeyUpkeepHoursUrgent   string = "UPKEEP_HOURS_URGENT"
	EnvKeyUpkeepHoursUpcoming string = "UPKEEP_HOURS_UPCOMING"

	EnvKeySmtpHost string = "UPKEEP_SMTP_HOST"
	EnvKeySmtpPort string = "UPKEEP_SMTP_PORT"
	EnvKeySmtpUser string = "UPKEEP_SMTP_USER"
	EnvKeySmtpPass string = "UPKEEP_SMTP_PASS"
	EnvKeySmtpFrom string = "UPKEEP_SMTP_FROM"

	LoggerNameUpkeepCore    string = "upkeep_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameMailer        string = "mailer"
	LoggerFieldCategory     string = "category"
	LoggerCategoryAlert     string = "alert"
	LoggerCategorySchedule  string = "schedule"
	LoggerCategoryDigest    string = "digest"
	LoggerCategoryBoat      string = "boat"
)
