package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProjectInfo describes one project entry in the maintainers file.
// Every field is optional; composers substitute defaults for anything
// missing.
type ProjectInfo struct {
	ProjectName string   `json:"project_name,omitempty"`
	DocsURL     string   `json:"docs_url,omitempty"`
	GithubURL   string   `json:"github_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Maintainers []string `json:"maintainers,omitempty"`
}

// OrganizationInfo holds org-wide links. All optional.
type OrganizationInfo struct {
	Name    string `json:"name,omitempty"`
	Website string `json:"website,omitempty"`
	Docs    string `json:"docs,omitempty"`
	Github  string `json:"github,omitempty"`
}

// Config is the parsed maintainers file. It is loaded fresh on every
// request and never mutated.
type Config struct {
	Projects     ProjectSet       `json:"projects"`
	Organization OrganizationInfo `json:"organization"`
}

// ProjectSet is a mapping of project key to ProjectInfo that remembers
// the key order of the source file, so listings render in the same
// order maintainers wrote them.
type ProjectSet struct {
	keys  []string
	items map[string]ProjectInfo
}

func NewProjectSet() ProjectSet {
	return ProjectSet{items: make(map[string]ProjectInfo)}
}

func (ps *ProjectSet) Set(key string, info ProjectInfo) {
	if ps.items == nil {
		ps.items = make(map[string]ProjectInfo)
	}
	if _, exists := ps.items[key]; !exists {
		ps.keys = append(ps.keys, key)
	}
	ps.items[key] = info
}

func (ps ProjectSet) Get(key string) (ProjectInfo, bool) {
	info, ok := ps.items[key]
	return info, ok
}

// Keys returns project keys in file order.
func (ps ProjectSet) Keys() []string {
	return ps.keys
}

func (ps ProjectSet) Len() int {
	return len(ps.keys)
}

// UnmarshalJSON decodes the projects object token by token so that key
// order survives the trip through Go's unordered maps.
func (ps *ProjectSet) UnmarshalJSON(data []byte) error {
	*ps = NewProjectSet()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("projects: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("projects: expected string key, got %v", keyTok)
		}
		var info ProjectInfo
		if err := dec.Decode(&info); err != nil {
			return fmt.Errorf("projects[%s]: %w", key, err)
		}
		ps.Set(key, info)
	}
	return nil
}

func (ps ProjectSet) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range ps.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := json.Marshal(ps.items[key])
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
