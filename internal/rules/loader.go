package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a house rules book.
//
//	rules:
//	  - when: "sum == 7"
//	    outcome: keep
//	  - when: "dice[0] == dice[1] && sum == 2"
//	    outcome: zero
type File struct {
	Rules []Rule `yaml:"rules"`
}

// LoadFile decodes and compiles the rule book at path.
func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open rules file %s: %w", path, err)
	}
	defer f.Close()

	var file File
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode rules file %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s declares no rules", path)
	}
	return NewBook(file.Rules)
}
