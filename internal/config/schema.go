package config

import (
	"fmt"
	"strconv"
	"strings"

	"ssf/internal/errors"
)

// FieldKind is the declared type of a schema field, driving the
// conversion applied to raw string values in Set.
type FieldKind int

const (
	StringField FieldKind = iota
	BoolField
	IntField
	FloatField
	StringListField
)

// String returns the kind name used in error messages.
func (k FieldKind) String() string {
	switch k {
	case StringField:
		return "string"
	case BoolField:
		return "boolean"
	case IntField:
		return "integer"
	case FloatField:
		return "float"
	case StringListField:
		return "string list"
	default:
		return "unknown"
	}
}

// Field describes one configuration key. Nested sub-policy keys use a
// dotted path ("file_processing.default_dry_run").
type Field struct {
	Key         string
	Kind        FieldKind
	Description string
	Get         func(*Config) interface{}
	set         func(*Config, interface{})
}

// schema is the explicit registration table for every settable key.
// The order here is the display order of `config show`.
var schema = []Field{
	{
		Key: "project_name", Kind: StringField, Description: "Project name",
		Get: func(c *Config) interface{} { return c.ProjectName },
		set: func(c *Config, v interface{}) { c.ProjectName = v.(string) },
	},
	{
		Key: "version", Kind: StringField, Description: "Project version",
		Get: func(c *Config) interface{} { return c.Version },
		set: func(c *Config, v interface{}) { c.Version = v.(string) },
	},
	{
		Key: "output_dir", Kind: StringField, Description: "Destination directory for rename copies",
		Get: func(c *Config) interface{} { return c.OutputDir },
		set: func(c *Config, v interface{}) { c.OutputDir = v.(string) },
	},
	{
		Key: "temp_dir", Kind: StringField, Description: "Scratch directory",
		Get: func(c *Config) interface{} { return c.TempDir },
		set: func(c *Config, v interface{}) { c.TempDir = v.(string) },
	},
	{
		Key: "file_processing.default_dry_run", Kind: BoolField, Description: "Preview batch operations unless overridden",
		Get: func(c *Config) interface{} { return c.FileProcessing.DefaultDryRun },
		set: func(c *Config, v interface{}) { c.FileProcessing.DefaultDryRun = v.(bool) },
	},
	{
		Key: "file_processing.default_recursive", Kind: BoolField, Description: "Match files in subdirectories unless overridden",
		Get: func(c *Config) interface{} { return c.FileProcessing.DefaultRecursive },
		set: func(c *Config, v interface{}) { c.FileProcessing.DefaultRecursive = v.(bool) },
	},
	{
		Key: "file_processing.exclude_patterns", Kind: StringListField, Description: "Patterns always excluded from batch operations",
		Get: func(c *Config) interface{} { return c.FileProcessing.ExcludePatterns },
		set: func(c *Config, v interface{}) { c.FileProcessing.ExcludePatterns = v.([]string) },
	},
	{
		Key: "file_processing.supported_extensions", Kind: StringListField, Description: "Extensions batch scripts accept",
		Get: func(c *Config) interface{} { return c.FileProcessing.SupportedExtensions },
		set: func(c *Config, v interface{}) { c.FileProcessing.SupportedExtensions = v.([]string) },
	},
	{
		Key: "file_processing.copy_instead_of_rename", Kind: BoolField, Description: "Copy into output_dir instead of renaming in place",
		Get: func(c *Config) interface{} { return c.FileProcessing.CopyInsteadOfRename },
		set: func(c *Config, v interface{}) { c.FileProcessing.CopyInsteadOfRename = v.(bool) },
	},
	{
		Key: "rename_config.default_prefix", Kind: StringField, Description: "Prefix applied when none is given",
		Get: func(c *Config) interface{} { return c.RenameConfig.DefaultPrefix },
		set: func(c *Config, v interface{}) { c.RenameConfig.DefaultPrefix = v.(string) },
	},
	{
		Key: "rename_config.default_suffix", Kind: StringField, Description: "Suffix applied when none is given",
		Get: func(c *Config) interface{} { return c.RenameConfig.DefaultSuffix },
		set: func(c *Config, v interface{}) { c.RenameConfig.DefaultSuffix = v.(string) },
	},
	{
		Key: "rename_config.conflict_resolution", Kind: StringField, Description: "Name collision strategy",
		Get: func(c *Config) interface{} { return c.RenameConfig.ConflictResolution },
		set: func(c *Config, v interface{}) { c.RenameConfig.ConflictResolution = v.(string) },
	},
	{
		Key: "rename_config.date_format", Kind: StringField, Description: "Timestamp layout for conflict suffixes",
		Get: func(c *Config) interface{} { return c.RenameConfig.DateFormat },
		set: func(c *Config, v interface{}) { c.RenameConfig.DateFormat = v.(string) },
	},
	{
		Key: "rename_config.preserve_original", Kind: BoolField, Description: "Keep source files after a rename commit",
		Get: func(c *Config) interface{} { return c.RenameConfig.PreserveOriginal },
		set: func(c *Config, v interface{}) { c.RenameConfig.PreserveOriginal = v.(bool) },
	},
	{
		Key: "log_level", Kind: StringField, Description: "Log level (debug, info, warn, error)",
		Get: func(c *Config) interface{} { return c.LogLevel },
		set: func(c *Config, v interface{}) { c.LogLevel = v.(string) },
	},
	{
		Key: "log_file", Kind: StringField, Description: "Log file path",
		Get: func(c *Config) interface{} { return c.LogFile },
		set: func(c *Config, v interface{}) { c.LogFile = v.(string) },
	},
	{
		Key: "timeout", Kind: IntField, Description: "Request timeout in seconds",
		Get: func(c *Config) interface{} { return c.Timeout },
		set: func(c *Config, v interface{}) { c.Timeout = v.(int) },
	},
	{
		Key: "retry_count", Kind: IntField, Description: "Request retry count",
		Get: func(c *Config) interface{} { return c.RetryCount },
		set: func(c *Config, v interface{}) { c.RetryCount = v.(int) },
	},
	{
		Key: "debug", Kind: BoolField, Description: "Debug mode",
		Get: func(c *Config) interface{} { return c.Debug },
		set: func(c *Config, v interface{}) { c.Debug = v.(bool) },
	},
	{
		Key: "verbose", Kind: BoolField, Description: "Verbose output",
		Get: func(c *Config) interface{} { return c.Verbose },
		set: func(c *Config, v interface{}) { c.Verbose = v.(bool) },
	},
}

// Schema returns the full ordered field table.
func Schema() []Field {
	return schema
}

// Lookup finds a schema field by key.
func Lookup(key string) (Field, bool) {
	for _, f := range schema {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Set converts raw according to the declared type of key and assigns
// it on cfg. Unknown keys and unconvertible values return classified
// errors; cfg is left untouched on failure.
func Set(cfg *Config, key, raw string) error {
	field, ok := Lookup(key)
	if !ok {
		return errors.NewUnknownKeyError(key)
	}

	value, err := convert(field.Kind, key, raw)
	if err != nil {
		return err
	}
	field.set(cfg, value)
	return nil
}

func convert(kind FieldKind, key, raw string) (interface{}, error) {
	switch kind {
	case BoolField:
		return parseBool(key, raw)
	case IntField:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.NewTypeConversionError(key, raw, kind.String())
		}
		return n, nil
	case FloatField:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.NewTypeConversionError(key, raw, kind.String())
		}
		return f, nil
	case StringListField:
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		return values, nil
	default:
		return raw, nil
	}
}

// parseBool accepts the documented case-insensitive truth table and
// nothing else.
func parseBool(key, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, errors.NewTypeConversionError(key, raw, BoolField.String())
	}
}

// FormatValue renders a field value for display.
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case []string:
		return strings.Join(value, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}
