package model

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FormatVersion is the version written into every encoded document.
const FormatVersion = 1

// document is the decoded shape of a contacts file.
type document struct {
	Version  int      `yaml:"version"`
	Contacts []Record `yaml:"contacts"`
}

// EncodeRecords serializes records into a YAML document.
// Records are written in the order given.
func EncodeRecords(records []Record) ([]byte, error) {
	node := buildDocumentNode(records)

	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contacts: %w", err)
	}
	return data, nil
}

// DecodeRecords parses a document produced by EncodeRecords.
// Empty or whitespace-only input yields no records.
// Input that does not decode into contact records returns an error wrapping
// ErrCorrupt.
func DecodeRecords(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at the top level", ErrCorrupt)
	}

	var doc document
	if err := root.Content[0].Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, doc.Version)
	}

	for i, r := range doc.Contacts {
		if r.Name == "" || r.Phone == "" || r.Email == "" {
			return nil, fmt.Errorf("%w: record %d is missing a field", ErrCorrupt, i+1)
		}
	}

	return doc.Contacts, nil
}

// buildDocumentNode creates a yaml.Node tree for a contacts document.
func buildDocumentNode(records []Record) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addIntField(doc, "version", FormatVersion)

	contactsNode := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range records {
		contactsNode.Content = append(contactsNode.Content, buildRecordNode(r))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "contacts"},
		contactsNode,
	)

	return doc
}

// buildRecordNode creates a yaml.Node for a single Record.
func buildRecordNode(r Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "name", r.Name)
	addStringField(node, "phone", r.Phone)
	addStringField(node, "email", r.Email)
	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}
