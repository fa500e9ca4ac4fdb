// Package blueprint holds the built-in starter project definitions.
//
// Each blueprint is a named, fixed set of files embedded under assets/.
// Asset files carry a .tmpl suffix (stripped on load) and are rendered
// with the flat variable set in model.Vars before generation.
package blueprint

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/devkent/goboot/internal/scaffold/model"
)

//go:embed all:assets
var assetsFS embed.FS

// templateSuffix is stripped from asset file names to obtain the
// output path relative to the project root.
const templateSuffix = ".tmpl"

// definition describes a registered blueprint before its assets are loaded.
type definition struct {
	name        string
	description string
	// dirs is the explicit directory list created before any file is
	// written. It mirrors the produced tree even where file paths would
	// already imply a directory.
	dirs []string
}

var definitions = []definition{
	{
		name:        "mysql",
		description: "HTTP service backed by a pooled MySQL connection with bounded connect retries",
		dirs: []string{
			"cmd/server",
			"config",
			"internal/routes",
			"internal/handlers",
			"internal/models",
			"internal/services",
			"internal/db",
			"pkg/utils",
		},
	},
	{
		name:        "memory",
		description: "HTTP service with a mutex-guarded in-memory CRUD store",
		dirs: []string{
			"cmd/server",
			"internal/routes",
			"internal/handlers",
			"internal/models",
			"internal/services",
			"pkg/utils",
		},
	},
}

// Names returns the registered blueprint names in sorted order.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for _, def := range definitions {
		names = append(names, def.name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns a name -> description map for all registered blueprints.
func Descriptions() map[string]string {
	descs := make(map[string]string, len(definitions))
	for _, def := range definitions {
		descs[def.name] = def.description
	}
	return descs
}

// Has reports whether a blueprint with the given name is registered.
func Has(name string) bool {
	for _, def := range definitions {
		if def.name == name {
			return true
		}
	}
	return false
}

// Load resolves a blueprint by name and renders its embedded assets with
// the given variables. The returned blueprint's file order follows the
// lexical walk order of the asset tree, so repeated loads with identical
// variables produce identical output.
func Load(name string, vars model.Vars) (*model.Blueprint, error) {
	var def *definition
	for i := range definitions {
		if definitions[i].name == name {
			def = &definitions[i]
			break
		}
	}
	if def == nil {
		return nil, newBlueprintError(BlueprintUnknown, name,
			"unknown blueprint (available: "+strings.Join(Names(), ", ")+")", nil)
	}

	root := path.Join("assets", def.name)
	bp := &model.Blueprint{
		Name:        def.name,
		Description: def.description,
		Dirs:        append([]string(nil), def.dirs...),
	}

	err := fs.WalkDir(assetsFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return newBlueprintError(BlueprintLoadFailed, name, "failed to walk assets", err)
		}
		if d.IsDir() {
			return nil
		}

		raw, err := assetsFS.ReadFile(p)
		if err != nil {
			return newBlueprintError(BlueprintLoadFailed, name, "failed to read asset "+p, err)
		}

		relPath := strings.TrimPrefix(p, root+"/")
		relPath = strings.TrimSuffix(relPath, templateSuffix)

		content, err := render(relPath, raw, vars)
		if err != nil {
			return newBlueprintError(BlueprintRenderFailed, name, "failed to render "+relPath, err)
		}

		bp.Files = append(bp.Files, model.File{
			Path:    relPath,
			Content: content,
			Mode:    0644,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(bp.Files) == 0 {
		return nil, newBlueprintError(BlueprintLoadFailed, name, "blueprint has no asset files", nil)
	}

	return bp, nil
}
