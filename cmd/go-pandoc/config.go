package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for profile operations.
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrEmptyProfileName = errors.New("profile name cannot be empty")
	ErrProfileParse     = errors.New("failed to parse profile")
)

// Profile holds conversion defaults loaded from a YAML file. Explicit
// command-line flags win over profile values.
type Profile struct {
	From           string            `yaml:"from"`
	To             string            `yaml:"to"`
	Standalone     bool              `yaml:"standalone"`
	TOC            bool              `yaml:"toc"`
	NumberSections bool              `yaml:"numberSections"`
	SlideLevel     int               `yaml:"slideLevel"`
	Template       string            `yaml:"template"`
	Variables      map[string]string `yaml:"variables"`
	PandocPath     []string          `yaml:"pandocPath"`
	LatexPath      []string          `yaml:"latexPath"`
}

// LoadProfile loads a profile from a file path or profile name. A string
// containing a path separator is treated as a path; otherwise the name is
// searched in the current directory and the user config directory. Missing
// files are an error, never a silent fallback.
func LoadProfile(nameOrPath string) (*Profile, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyProfileName
	}

	path := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveProfilePath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- profile path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile Profile
	if err := yaml.UnmarshalWithOptions(data, &profile, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileParse, err)
	}
	return &profile, nil
}

// resolveProfilePath searches for a profile by name, trying .yaml then .yml
// in the current directory, then in ~/.config/go-pandoc/.
func resolveProfilePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-pandoc", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrProfileNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
