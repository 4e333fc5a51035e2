package sequences

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/blockseq/internal/vocab"
	"gopkg.in/yaml.v3"
)

// LoadSequence reads a single sequence file from disk.
func LoadSequence(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sequence path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence %s: %w", path, err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse sequence %s: %w", path, err)
	}
	file.Source = path
	return file, nil
}

// LoadSequencesFromDir loads all sequence files from a directory. A
// missing directory yields no sequences.
func LoadSequencesFromDir(dir string) ([]*File, error) {
	if strings.TrimSpace(dir) == "" {
		return []*File{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*File{}, nil
		}
		return nil, fmt.Errorf("read sequences dir %s: %w", dir, err)
	}

	files := make([]*File, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		file, err := LoadSequence(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// Parse decodes and validates a sequence file. Action kinds may use
// vocabulary aliases; they are normalized to canonical kinds.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	file.Name = strings.TrimSpace(file.Name)
	if file.Name == "" {
		return nil, ErrSequenceNameRequired
	}
	file.Ruleset = strings.ToLower(strings.TrimSpace(file.Ruleset))
	if file.Ruleset == "" {
		return nil, ErrRulesetRequired
	}
	file.Description = strings.TrimSpace(file.Description)

	v, err := vocab.Builtin(file.Ruleset)
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", file.Name, err)
	}

	for i, action := range file.Actions {
		normalized, err := v.Normalize(action)
		if err != nil {
			return nil, fmt.Errorf("sequence %q action %d: %w", file.Name, i+1, err)
		}
		file.Actions[i] = normalized
	}

	return &file, nil
}

// Marshal encodes a sequence file as YAML.
func Marshal(file *File) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("sequence is required")
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal sequence %q: %w", file.Name, err)
	}
	return data, nil
}
