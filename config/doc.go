// Package config loads hofkit configuration with Viper.
//
// Values come from a YAML/JSON/TOML file found in standard locations, an
// optional .env file (loaded with godotenv), and environment variables
// carrying the service prefix. Environment variables win over the file.
//
// # Usage
//
//	var cfg app.Config
//	err := config.LoadConfig("hofkit", &cfg)
//
// HOFKIT_SERVER_PORT=9090 overrides server.port; HOFKIT_SELECTION_TIE_BREAK
// overrides selection.tie_break.
package config
