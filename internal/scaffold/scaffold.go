// Package scaffold emits static project templates for the create
// command. Templates are fixed file sets; nothing here is rendered
// beyond substituting the project name.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ssf/internal/errors"
)

// templateFile is one file of a project template. Content may contain
// the {{name}} placeholder.
type templateFile struct {
	path    string
	content string
}

var templates = map[string][]templateFile{
	"python": {
		{"README.md", "# {{name}}\n\nA Python project.\n"},
		{"requirements.txt", "\n"},
		{"src/{{name}}/__init__.py", ""},
		{"src/{{name}}/main.py", "def main():\n    print(\"Hello from {{name}}!\")\n\n\nif __name__ == \"__main__\":\n    main()\n"},
		{".gitignore", "__pycache__/\n*.pyc\n.venv/\n"},
	},
	"web": {
		{"README.md", "# {{name}}\n\nA static web project.\n"},
		{"index.html", "<!DOCTYPE html>\n<html>\n<head>\n  <title>{{name}}</title>\n  <link rel=\"stylesheet\" href=\"css/style.css\">\n</head>\n<body>\n  <h1>{{name}}</h1>\n  <script src=\"js/app.js\"></script>\n</body>\n</html>\n"},
		{"css/style.css", "body {\n  font-family: sans-serif;\n  margin: 2rem;\n}\n"},
		{"js/app.js", "console.log(\"{{name}} loaded\");\n"},
	},
	"cli": {
		{"README.md", "# {{name}}\n\nA command-line tool.\n"},
		{"main.py", "import sys\n\n\ndef main():\n    print(\"{{name}}\", sys.argv[1:])\n\n\nif __name__ == \"__main__\":\n    main()\n"},
		{".gitignore", "__pycache__/\n*.pyc\n"},
	},
}

// Kinds returns the available template names, in display order.
func Kinds() []string {
	return []string{"python", "web", "cli"}
}

// Create writes the template kind into baseDir/name and returns the
// created file paths. The target directory must not already exist.
func Create(kind, name, baseDir string) ([]string, error) {
	files, ok := templates[kind]
	if !ok {
		return nil, errors.NewValidationError("unknown project template %q (available: %s)",
			kind, strings.Join(Kinds(), ", "))
	}
	if name == "" {
		return nil, errors.NewValidationError("a project name is required")
	}

	root := filepath.Join(baseDir, name)
	if _, err := os.Stat(root); err == nil {
		return nil, errors.NewFileError("target already exists", root, errors.FileOperationFailed, nil)
	}

	var created []string
	for _, f := range files {
		rel := strings.ReplaceAll(f.path, "{{name}}", name)
		content := strings.ReplaceAll(f.content, "{{name}}", name)
		path := filepath.Join(root, rel)

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return created, errors.NewFileError("failed to create directory", filepath.Dir(path), errors.FileOperationFailed, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return created, errors.NewFileError("failed to write file", path, errors.FileOperationFailed, err)
		}
		created = append(created, path)
	}
	return created, nil
}

// Describe returns a short human-readable summary of a template.
func Describe(kind string) string {
	switch kind {
	case "python":
		return "Python package layout with src/ and requirements.txt"
	case "web":
		return "Static web page with css/ and js/"
	case "cli":
		return "Single-file command-line tool"
	default:
		return fmt.Sprintf("unknown template %q", kind)
	}
}
