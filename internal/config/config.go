package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	dbConnEnvKey      = "DATABASE_URL"
	apiPortEnvKey     = "API_PORT"
	jwtSecretEnvKey   = "JWT_SECRET"
	apiUsernameEnvKey = "API_USERNAME"
	apiPassHashEnvKey = "API_PASSWORD_HASH"
	logLevelEnvKey    = "LOG_LEVEL"
	defaultLogLevel   = "info"
)

// Database is what every command needs.
type Database struct {
	ConnectionURL string
	LogLevel      string
}

// App is the additional configuration of the HTTP server.
type App struct {
	Database
	Port         string
	JWTSecret    string
	Username     string
	PasswordHash string
}

func NewDatabase() (Database, error) {
	dbConn, err := lookup(dbConnEnvKey)
	if err != nil {
		return Database{}, err
	}

	logLevel, ok := os.LookupEnv(logLevelEnvKey)
	if !ok || logLevel == "" {
		logLevel = defaultLogLevel
	}

	return Database{
		ConnectionURL: dbConn,
		LogLevel:      logLevel,
	}, nil
}

func NewApp() (App, error) {
	database, err := NewDatabase()
	if err != nil {
		return App{}, err
	}

	port, err := lookup(apiPortEnvKey)
	if err != nil {
		return App{}, err
	}

	jwtSecret, err := lookup(jwtSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	username, err := lookup(apiUsernameEnvKey)
	if err != nil {
		return App{}, err
	}

	passwordHash, err := lookup(apiPassHashEnvKey)
	if err != nil {
		return App{}, err
	}

	return App{
		Database:     database,
		Port:         port,
		JWTSecret:    jwtSecret,
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}

func lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return value, nil
}
