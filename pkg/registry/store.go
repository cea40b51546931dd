package registry

import (
	"encoding/json"
	"os"

	"github.com/kubestellar/slackbot/pkg/logger"
)

// Store reads project and organization metadata from a JSON file. It
// keeps no cache: every Load re-reads the file, so edits take effect on
// the next request without a restart.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the current config. It never fails: a missing file
// yields the built-in default config and malformed JSON yields an
// empty project set, both logged.
func (s *Store) Load() Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.ErrorCF("registry", "Maintainers file not found, using default config", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return defaultConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.ErrorCF("registry", "Invalid JSON in maintainers file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return Config{Projects: NewProjectSet()}
	}

	return cfg
}

// ProjectInfo looks up a project by key, falling back to the "default"
// entry, falling back to an empty ProjectInfo. Downstream composers
// substitute their own defaults for missing fields.
func (s *Store) ProjectInfo(key string) ProjectInfo {
	cfg := s.Load()
	if info, ok := cfg.Projects.Get(key); ok {
		return info
	}
	if info, ok := cfg.Projects.Get("default"); ok {
		return info
	}
	return ProjectInfo{}
}

func defaultConfig() Config {
	projects := NewProjectSet()
	projects.Set("default", ProjectInfo{
		DocsURL:     "https://docs.kubestellar.io/",
		GithubURL:   "https://github.com/kubestellar/kubestellar",
		Maintainers: []string{"Andy Anderson"},
	})
	return Config{Projects: projects}
}
