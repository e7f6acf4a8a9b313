package cdp

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// SupportedVersionMajor and SupportedVersionMinor pin the IDL revision this
// generator understands. Any other version aborts the run.
const (
	SupportedVersionMajor = "1"
	SupportedVersionMinor = "3"
)

// SchemaDocument is the root node of one IDL document.
type SchemaDocument struct {
	Version VersionNode  `json:"version"`
	Domains []DomainNode `json:"domains"`
}

// VersionNode carries the protocol revision declared by a document.
type VersionNode struct {
	Major FlexString `json:"major"`
	Minor FlexString `json:"minor"`
}

// FlexString decodes either a JSON string or a bare number into a string, so
// YAML documents that spell the version as `major: 1` parse the same way as
// the JSON originals.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

// DomainNode is the raw schema node for one protocol domain.
type DomainNode struct {
	Domain       string        `json:"domain"`
	Experimental bool          `json:"experimental"`
	Dependencies []string      `json:"dependencies"`
	Types        []TypeNode    `json:"types"`
	Commands     []CommandNode `json:"commands"`
	Events       []EventNode   `json:"events"`
}

// TypeNode is the raw schema node for a top-level type definition.
type TypeNode struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Items       *ItemsNode     `json:"items"`
	Enum        []string       `json:"enum"`
	Properties  []PropertyNode `json:"properties"`
}

// PropertyNode is the raw schema node for a property, command parameter,
// command return, or event parameter.
type PropertyNode struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Ref         string     `json:"$ref"`
	Enum        []string   `json:"enum"`
	Items       *ItemsNode `json:"items"`
	Optional    bool       `json:"optional"`
}

// ItemsNode describes the element type of a repeated property.
type ItemsNode struct {
	Type string `json:"type"`
	Ref  string `json:"$ref"`
}

// CommandNode is the raw schema node for a command.
type CommandNode struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Experimental bool           `json:"experimental"`
	Parameters   []PropertyNode `json:"parameters"`
	Returns      []PropertyNode `json:"returns"`
}

// EventNode is the raw schema node for an event.
type EventNode struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  []PropertyNode `json:"parameters"`
}

// LoadDocument reads and decodes one IDL document. JSON documents decode
// directly; YAML documents are unmarshalled generically and re-encoded to
// JSON so both formats share one strictly typed decode path.
func LoadDocument(path string) (*SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML schema %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, fmt.Errorf("failed to convert YAML schema %s: %w", path, err)
		}
	case strings.HasSuffix(path, ".json"):
	default:
		return nil, fmt.Errorf("unsupported schema format %s: must be .json, .yaml, or .yml", path)
	}

	var doc SchemaDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}
	return &doc, nil
}

// CheckVersion verifies that doc declares exactly the supported protocol
// revision.
func CheckVersion(doc *SchemaDocument, path string) error {
	major, minor := string(doc.Version.Major), string(doc.Version.Minor)
	if major != SupportedVersionMajor || minor != SupportedVersionMinor {
		return fmt.Errorf("schema %s declares version %s.%s, want %s.%s",
			path, major, minor, SupportedVersionMajor, SupportedVersionMinor)
	}
	return nil
}
