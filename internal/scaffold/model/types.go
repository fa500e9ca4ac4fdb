package model

import "os"

// DefaultProjectName is used when no project name is supplied on the
// command line, in goboot.toml, or interactively.
const DefaultProjectName = "go-api-starter"

// File represents a single file to be materialized by a blueprint.
type File struct {
	// Path is the relative path from the project root.
	Path string
	// Content is the rendered file content.
	Content []byte
	// Mode is the file permission mode.
	Mode os.FileMode
}

// Blueprint is a named, fixed set of directories and files describing a
// complete starter project. Directories are created before any file is
// written, including directories that receive no file of their own.
type Blueprint struct {
	// Name identifies the blueprint (e.g. "mysql", "memory").
	Name string
	// Description is a one-line summary shown in listings.
	Description string
	// Dirs are the directories to create under the project root, in order.
	Dirs []string
	// Files are the template entries, in emission order.
	Files []File
}

// Vars holds the values substituted into blueprint templates.
type Vars struct {
	// ProjectName is the human-facing project name (also the default
	// output directory name).
	ProjectName string
	// Module is the Go module path passed to "go mod init".
	Module string
}
