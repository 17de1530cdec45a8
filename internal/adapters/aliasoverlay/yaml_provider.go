package aliasoverlay

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_aliases.yaml
var embeddedDefaultAliases []byte

// YAMLProvider implements the AliasOverlayProvider interface by reading
// and appending aliases in a YAML file.
type YAMLProvider struct {
	filePath string
	mu       sync.Mutex
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file holding user-defined aliases.
func NewYAMLProvider(filePath string) (ports.AliasOverlayProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultAliases returns the aliases bundled with the binary.
func DefaultAliases() ([]alias.Alias, error) {
	aliases, err := decodeAliases(embeddedDefaultAliases)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal default aliases: %w", err)
	}
	return aliases, nil
}

// GetAliasOverlays reads and parses aliases from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetAliasOverlays() ([]alias.Alias, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

/*
AddAliasOverlay appends newAlias to the YAML file, creating it if needed.
It returns false without writing when an alias with the same name is already
in the file.
*/
func (p *YAMLProvider) AddAliasOverlay(newAlias alias.Alias) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, err := p.load()
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if a.Name == newAlias.Name {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(p.filePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", p.filePath, err)
	}

	out, err := yaml.Marshal(append(existing, newAlias))
	if err != nil {
		return false, fmt.Errorf("failed to marshal aliases: %w", err)
	}
	if err := os.WriteFile(p.filePath, out, 0o644); err != nil {
		return false, fmt.Errorf("failed to write aliases file %s: %w", p.filePath, err)
	}
	return true, nil
}

func (p *YAMLProvider) load() ([]alias.Alias, error) {
	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to read aliases file %s: %w", p.filePath, err)
	}
	aliases, err := decodeAliases(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", p.filePath, err)
	}
	return aliases, nil
}

func decodeAliases(data []byte) ([]alias.Alias, error) {
	aliases := []alias.Alias{}
	if len(data) == 0 {
		return aliases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&aliases); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, err
	}

	for i, a := range aliases {
		if a.Name == "" || a.Command == "" {
			return nil, fmt.Errorf("entry %d: both 'command' and 'alias' are required", i+1)
		}
	}
	return aliases, nil
}
