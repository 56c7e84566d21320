package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the API.
	// Leaving it empty disables API key protection.
	ApiKey string `mapstructure:"api_key" default:""`
	// BasePath is the prefix all routes are mounted under.
	BasePath string `mapstructure:"base_path" default:"/xml-compare-api"`
	// BodyLimitMB is the maximum request body size in megabytes.
	// Batch payloads carrying full documents can be large.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"500"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	limit := c.BodyLimitMB
	if limit <= 0 {
		limit = 500
	}
	return limit * 1024 * 1024
}
