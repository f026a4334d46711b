package model

// Scope carries the authenticated caller identity through usecases.
type Scope struct {
	UserID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
