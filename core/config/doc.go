// Package config provides configuration management for the asset loader.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional config.yaml. Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: MySQL or SQLite connection for stored manifests
//   - Fetch: base directory, HTTP timeout and user agent for asset transports
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
