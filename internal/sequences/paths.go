package sequences

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SequenceSearchPaths returns sequence search directories in precedence
// order: the project, an optional configured directory, then the user
// config directory.
func SequenceSearchPaths(projectDir, extraDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".blockseq", "sequences"))
	}
	if extraDir != "" {
		paths = append(paths, extraDir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "blockseq", "sequences"))
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "blockseq", "sequences"))
	}
	return paths
}

// LoadSequencesFromSearchPaths loads sequences from the search paths and
// the builtins with first-hit precedence by name.
func LoadSequencesFromSearchPaths(projectDir, extraDir string) ([]*File, error) {
	seen := make(map[string]*File)
	order := make([]string, 0)

	add := func(files []*File) {
		for _, file := range files {
			if _, exists := seen[file.Name]; exists {
				continue
			}
			seen[file.Name] = file
			order = append(order, file.Name)
		}
	}

	for _, path := range SequenceSearchPaths(projectDir, extraDir) {
		files, err := LoadSequencesFromDir(path)
		if err != nil {
			return nil, err
		}
		add(files)
	}

	builtins, err := LoadBuiltinSequences()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*File, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find resolves a sequence by name from the search paths, or loads it
// directly when ref is a path to a YAML file.
func Find(ref, projectDir, extraDir string) (*File, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrSequenceNameRequired
	}

	ext := strings.ToLower(filepath.Ext(ref))
	if ext == ".yaml" || ext == ".yml" {
		return LoadSequence(ref)
	}

	files, err := LoadSequencesFromSearchPaths(projectDir, extraDir)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if file.Name == ref {
			return file, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSequenceNotFound, ref)
}
