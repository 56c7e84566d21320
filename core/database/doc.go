// Package database handles the optional comparison history connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration, with a
// SQLite path used for local setups and in-memory tests.
//
// # Connect
//
// The Connect function establishes a connection to the history database. The
// connection is optional: when it fails, the service still starts and simply
// skips history recording.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History persistence disabled", zap.Error(err))
//	}
package database
