// Package config provides configuration management for the XML comparison service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, base path, body limit)
//   - Database: history database connection details (optional)
//   - Storage: S3/MinIO credentials and bucket settings (optional)
//   - Log: Logging level and format
//   - Session: credential session TTL and sweep interval
//   - Fetch: remote fetch timeouts and batch concurrency limit
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
