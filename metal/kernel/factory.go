package kernel

import (
	"log"
	"strconv"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
	"github.com/ehihameneromosele/fullblog2c/pkg/llogs"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	options := sentry.ClientOptions{
		Dsn:   env.Sentry.DSN,
		Debug: !env.App.IsProduction(),
	}

	if err := sentry.Init(options); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	httpOptions := sentryhttp.Options{}

	return &portal.Sentry{
		Handler: sentryhttp.New(httpOptions),
		Options: &httpOptions,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	conn, err := database.MakeConnection(env)
	if err != nil {
		panic("Sql: error connecting to PostgresSQL: " + err.Error())
	}

	return conn
}

func MakeLogs(env *env.Environment) llogs.Driver {
	driver, err := llogs.MakeFilesLogs(env)
	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return driver
}

func mustInt(envVar string) int {
	value, err := strconv.Atoi(env.GetEnvVar(envVar))
	if err != nil {
		panic("Environment: invalid value for " + envVar + ": " + err.Error())
	}

	return value
}

func mustPass(validate *portal.Validator, section string, model any) {
	if _, err := validate.Rejects(model); err != nil {
		panic("Environment: invalid [" + section + "] model: " + validate.GetErrorsAsJson())
	}
}

// MakeEnv reads every ENV_* variable, preferring docker secrets where they
// exist, and panics on the first section that fails validation. The process
// cannot run on a partial environment.
func MakeEnv(validate *portal.Validator) *env.Environment {
	blog := &env.Environment{
		App: env.AppEnvironment{
			Name: env.GetEnvVar("ENV_APP_NAME"),
			URL:  env.GetEnvVar("ENV_APP_URL"),
			Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
		},
		DB: env.DBEnvironment{
			UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
			UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
			DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
			Port:         mustInt("ENV_DB_PORT"),
			Host:         env.GetEnvVar("ENV_DB_HOST"),
			DriverName:   database.DriverName,
			SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
			TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
		},
		JWT: env.JWTEnvironment{
			Secret:          env.GetSecretOrEnv("jwt_secret", "ENV_JWT_SECRET"),
			AccessTTLMins:   mustInt("ENV_JWT_ACCESS_TTL_MINS"),
			RefreshTTLHours: mustInt("ENV_JWT_REFRESH_TTL_HOURS"),
		},
		S3: env.S3Environment{
			Bucket:          env.GetEnvVar("ENV_S3_BUCKET"),
			Region:          env.GetEnvVar("ENV_S3_REGION"),
			AccessKeyID:     env.GetSecretOrEnv("s3_access_key_id", "ENV_S3_ACCESS_KEY_ID"),
			SecretAccessKey: env.GetSecretOrEnv("s3_secret_access_key", "ENV_S3_SECRET_ACCESS_KEY"),
		},
		Logs: env.LogsEnvironment{
			Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
			Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
			DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
		},
		Network: env.NetEnvironment{
			HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
			HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
		},
		Sentry: env.SentryEnvironment{
			DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
			CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
		},
		Backup: env.BackupEnvironment{
			Schedule: env.GetEnvVar("ENV_DB_BACKUP_SCHEDULE"),
			Dir:      env.GetEnvVar("ENV_DB_BACKUP_DIR"),
			MaxKeep:  mustInt("ENV_DB_BACKUP_MAX_KEEP"),
		},
		Tracing: *env.NewTracingEnvironment(),
	}

	mustPass(validate, "APP", blog.App)
	mustPass(validate, "Sql", blog.DB)
	mustPass(validate, "JWT", blog.JWT)
	mustPass(validate, "S3", blog.S3)
	mustPass(validate, "logs Credentials", blog.Logs)
	mustPass(validate, "NETWORK", blog.Network)
	mustPass(validate, "SENTRY", blog.Sentry)
	mustPass(validate, "BACKUP", blog.Backup)
	mustPass(validate, "environment", blog)

	return blog
}
