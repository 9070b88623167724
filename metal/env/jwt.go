package env

import "time"

type JWTEnvironment struct {
	Secret          string `validate:"required,min=32"`
	AccessTTLMins   int    `validate:"required,gt=0"`
	RefreshTTLHours int    `validate:"required,gt=0"`
}

func (e JWTEnvironment) GetAccessTTL() time.Duration {
	return time.Duration(e.AccessTTLMins) * time.Minute
}

func (e JWTEnvironment) GetRefreshTTL() time.Duration {
	return time.Duration(e.RefreshTTLHours) * time.Hour
}
