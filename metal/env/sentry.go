package env

type SentryEnvironment struct {
	DSN string `validate:"required,min=8"`
	CSP string `validate:"omitempty,url"`
}
