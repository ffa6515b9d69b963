// Package config loads the service settings from the environment and builds the
// infrastructure they describe: database connections for the three supported drivers
// and the OpenTelemetry providers.
//
// A .env file is read first when present. Variables already set in the environment win.
package config
