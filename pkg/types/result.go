package types

// FileOutcome holds the outcome of a batch operation for a single file.
type FileOutcome struct {
	Path    string   `json:"path"`
	Name    string   `json:"name"`
	NewPath string   `json:"new_path,omitempty"`
	NewName string   `json:"new_name,omitempty"`
	Action  string   `json:"action"` // "preview", "copied" or "deleted"
	Error   string   `json:"error,omitempty"`
	File    FileInfo `json:"file_info"`
}

// Result aggregates one batch invocation. Success is true iff no
// per-file error was recorded; an empty match set is still a success.
type Result struct {
	Success   bool          `json:"success"`
	Script    string        `json:"script,omitempty"`
	Message   string        `json:"message"`
	Total     int           `json:"total_files"`
	Processed int           `json:"processed_files"`
	Failed    int           `json:"failed_files"`
	Outcomes  []FileOutcome `json:"outcomes,omitempty"`
	Errors    []FileOutcome `json:"errors,omitempty"`
}

// Failure builds a result for an invocation rejected before any
// filesystem access.
func Failure(msg string) *Result {
	return &Result{Success: false, Message: msg}
}
