// Package database handles the optional manifest database.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration, plus a small schema inspector used to
// verify that migrated tables carry the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Manifests disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "manifests", "name", "mode")
package database
