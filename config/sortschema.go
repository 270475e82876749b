// Package config loads and validates sort schemas: JSON files describing,
// per table, which columns may be sorted and how.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/tableaux-project/sortable"
)

var (
	// ErrUnknownSchema indicates that a requested schema is not
	// known to a SortMapper.
	ErrUnknownSchema = errors.New("unknown sort schema")

	// ErrUnknownColumn indicates that a requested column is
	// not known to a SortSchema.
	ErrUnknownColumn = errors.New("unknown column")
)

// UnknownColumnTypeError indicates that an unknown column type was found
// during integrity checking of a SortSchema.
type UnknownColumnTypeError struct {
	schema     string
	column     string
	columnType string
}

func (e UnknownColumnTypeError) Error() string {
	return fmt.Sprintf("unknown column type %s in column %s of schema %s", e.columnType, e.column, e.schema)
}

// InvalidSortConfigError indicates that a column declares a sort order,
// direction or null handling outside the allowed vocabulary.
type InvalidSortConfigError struct {
	schema   string
	column   string
	property string
	value    string
}

func (e InvalidSortConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q in column %s of schema %s", e.property, e.value, e.column, e.schema)
}

// SortSchema describes the sort configuration for a single table.
type SortSchema struct {
	Entity  string             `json:"entity"`
	Columns []SortSchemaColumn `json:"columns"`
}

// SortSchemaColumn is a single column of a SortSchema, defining whether
// and how the column may be sorted.
//
// Order is one of "" (reversible), "REVERSIBLE", "FIXED" or "NONE".
// Direction is the initial direction, "" meaning "ASC". Nulls is "" or
// "LAST" for nulls-last placement, or "FIRST".
type SortSchemaColumn struct {
	Title     string `json:"title"`
	Path      string `json:"path"`
	Type      string `json:"type"`
	Order     string `json:"order"`
	Direction string `json:"direction"`
	Nulls     string `json:"nulls"`
}

const (
	orderReversible = "REVERSIBLE"
	orderFixed      = "FIXED"
	orderNone       = "NONE"
)

var validColumnTypes = map[string]struct{}{
	"boolean":  {},
	"integer":  {},
	"long":     {},
	"double":   {},
	"string":   {},
	"date":     {},
	"datetime": {},
}

var validOrders = map[string]struct{}{
	"":              {},
	orderReversible: {},
	orderFixed:      {},
	orderNone:       {},
}

var validDirections = map[string]struct{}{
	"":                             {},
	string(sortable.DirectionAsc):  {},
	string(sortable.DirectionDesc): {},
}

var validNulls = map[string]struct{}{
	"":                          {},
	string(sortable.NullsFirst): {},
	string(sortable.NullsLast):  {},
}

// SortBy converts the column's declared order and direction into a sort
// descriptor.
func (column SortSchemaColumn) SortBy() *sortable.SortBy {
	descending := column.Direction == string(sortable.DirectionDesc)

	switch column.Order {
	case orderNone:
		return sortable.Unsortable()
	case orderFixed:
		if descending {
			return sortable.Decreasing()
		}
		return sortable.Increasing()
	default:
		if descending {
			return sortable.DecreasingOrIncreasing()
		}
		return sortable.IncreasingOrDecreasing()
	}
}

// NullHandling returns where null values of the column are placed.
func (column SortSchemaColumn) NullHandling() sortable.NullHandling {
	if column.Nulls == string(sortable.NullsFirst) {
		return sortable.NullsFirst
	}

	return sortable.NullsLast
}

// ValidateIntegrity checks that all columns of the schema only use known
// types, orders, directions and null handling modes.
func (schema SortSchema) ValidateIntegrity() error {
	for _, column := range schema.Columns {
		if _, exists := validColumnTypes[strings.ToLower(column.Type)]; !exists {
			return &UnknownColumnTypeError{
				schema:     schema.Entity,
				column:     column.Path,
				columnType: column.Type,
			}
		}

		if _, exists := validOrders[column.Order]; !exists {
			return &InvalidSortConfigError{schema.Entity, column.Path, "order", column.Order}
		}

		if _, exists := validDirections[column.Direction]; !exists {
			return &InvalidSortConfigError{schema.Entity, column.Path, "direction", column.Direction}
		}

		if _, exists := validNulls[column.Nulls]; !exists {
			return &InvalidSortConfigError{schema.Entity, column.Path, "nulls", column.Nulls}
		}
	}

	return nil
}

// Column retrieves the SortSchemaColumn for a single column path, or
// returns an ErrUnknownColumn, if the column does not exist.
func (schema SortSchema) Column(path string) (SortSchemaColumn, error) {
	for _, column := range schema.Columns {
		if column.Path == path {
			return column, nil
		}
	}

	return SortSchemaColumn{}, ErrUnknownColumn
}

// SortMapper is a mapper which maps table names to their sort schemas.
type SortMapper struct {
	schemas map[string]SortSchema
}

// NewSortMapperFromFolder builds a new sort mapper from a given folder,
// recursively loading all schema jsons which are found in there.
func NewSortMapperFromFolder(schemaPath string) (SortMapper, error) {
	schemas := make(map[string]SortSchema)

	regex := regexp.MustCompile(`[\\/]`)
	err := filepath.Walk(schemaPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(path) == ".json" {
			relativePath, err := filepath.Rel(schemaPath, path)
			if err != nil {
				return err
			}

			schema, err := loadSortSchemaFile(path)
			if err != nil {
				return err
			}

			name := regex.ReplaceAllString(strings.TrimSuffix(relativePath, filepath.Ext(path)), "")

			schemas[name] = schema
		} else if !f.IsDir() {
			log.WithField("file", path).Debug("Ignoring file, as not a json file!")
		}

		return nil
	})

	if err != nil {
		return SortMapper{}, err
	}

	log.WithField("count", len(schemas)).Info("Successfully loaded sort schemas")

	return SortMapper{schemas: schemas}, nil
}

// Schema retrieves a specific sort schema from the mapper if existing, or
// returns an error otherwise.
func (sortMapper SortMapper) Schema(name string) (SortSchema, error) {
	if _, exists := sortMapper.schemas[name]; !exists {
		return SortSchema{}, ErrUnknownSchema
	}

	return sortMapper.schemas[name], nil
}

// Schemas returns the names of all loaded sort schemas.
func (sortMapper SortMapper) Schemas() []string {
	names := make([]string, 0, len(sortMapper.schemas))
	for name := range sortMapper.schemas {
		names = append(names, name)
	}

	return names
}

// ValidateIntegrity checks the integrity of all loaded schemas.
func (sortMapper SortMapper) ValidateIntegrity() error {
	for _, schema := range sortMapper.schemas {
		if err := schema.ValidateIntegrity(); err != nil {
			return err
		}
	}

	return nil
}

func loadSortSchemaFile(path string) (SortSchema, error) {
	file, err := ioutil.ReadFile(path)
	if err != nil {
		return SortSchema{}, err
	}

	var schema SortSchema
	if err := json.Unmarshal(file, &schema); err != nil {
		return SortSchema{}, err
	}

	return schema, nil
}
