package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column is one column of an existing table, names and types lower-cased.
type Column struct {
	Field string
	Type  string
}

// TableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns.
func TableColumns(db *gorm.DB, table string) ([]Column, error) {
	var columns []Column

	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var rows []sqliteColumn
		if err := db.Raw("SELECT * FROM pragma_table_info(?)", table).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, col := range rows {
			columns = append(columns, Column{Field: strings.ToLower(col.Name), Type: strings.ToLower(col.Type)})
		}
		return columns, nil
	}

	type mysqlColumn struct {
		Field string
		Type  string
	}
	var rows []mysqlColumn
	err := db.Raw("SELECT COLUMN_NAME AS field, COLUMN_TYPE AS type FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION", table).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	for _, col := range rows {
		columns = append(columns, Column{Field: strings.ToLower(col.Field), Type: strings.ToLower(col.Type)})
	}
	return columns, nil
}

// MissingColumns returns the names in want that table lacks, in order.
func MissingColumns(db *gorm.DB, table string, want ...string) ([]string, error) {
	columns, err := TableColumns(db, table)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Field] = true
	}

	var missing []string
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
