package checks

import (
	"fmt"
	"reflect"
	"strings"

	"asset-reconciler/core/database"
	"asset-reconciler/feature/history"

	"gorm.io/gorm"
)

// JournalReport is the result of a journal schema check.
type JournalReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckJournal verifies the journal table against the history.Record model.
func CheckJournal(db *gorm.DB) (*JournalReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return checkModel(db, history.Record{})
}

// checkModel compares the gorm column and type tags of model with the live table.
func checkModel(db *gorm.DB, model interface{ TableName() string }) (*JournalReport, error) {
	report := &JournalReport{
		Table:          model.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actual, err := database.ColumnSet(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}
	if len(actual) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", report.Table))
		report.Matched = false
		return report, nil
	}

	t := reflect.TypeOf(model)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, exists := actual[colName]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		// Soft check: "varchar(36)" matches "varchar(36)" and "datetime" matches "datetime(3)".
		expType := strings.ToLower(parseGormType(tag))
		if expType != "" && !strings.Contains(col.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			report.Matched = false
		}
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	return gormSetting(tag, "column:")
}

func parseGormType(tag string) string {
	return gormSetting(tag, "type:")
}

func gormSetting(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
