package env_utils

const (
	EnvModeDevelopment = "development"
	EnvModeProduction  = "production"
)
