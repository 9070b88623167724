package env

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"required,min=4"`
	DateFormat string `validate:"required,min=4"`
}
