package types

// ScriptInfo describes a registered batch script for introspection.
type ScriptInfo struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	SupportedExtensions []string `json:"supported_extensions"`
	ConfigKeys          []string `json:"config_keys"`
}
