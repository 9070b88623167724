package env

type BackupEnvironment struct {
	Schedule string `validate:"required,cron"`
	Dir      string `validate:"required,min=2"`
	MaxKeep  int    `validate:"required,gt=0"`
}
