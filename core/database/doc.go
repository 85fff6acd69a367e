// Package database opens the journal database and reads live table schemas.
//
// Connect selects the gorm dialector from Config.Driver: "mysql" for shared
// deployments, "sqlite" (the default) for a local file or ":memory:".
// GetTableColumns and ColumnSet normalise SHOW COLUMNS and PRAGMA
// table_info into one ColumnInfo shape for the journal schema check.
package database
