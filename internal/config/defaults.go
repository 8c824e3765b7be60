package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "entregas_db",
}

var defaultAuth = Auth{
	MaxLoginAttempts: 5,
	LockoutWindow:    15 * time.Minute,
	SessionTTL:       2 * time.Hour,
}

var defaultReport = Report{
	Path: "relatorio_analise_completa.json",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultAuth returns the default login protection settings.
func DefaultAuth() Auth {
	return defaultAuth
}

// DefaultReport returns the default analytics report settings.
func DefaultReport() Report {
	return defaultReport
}
