// Package yamldoc implements the document parser port using gopkg.in/yaml.v3.
package yamldoc

import (
	"github.com/nymag/nymag-fs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DocumentParser = (*Parser)(nil)

// Parser decodes YAML documents into generic values.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the first YAML document in data.
// Mappings decode to map[string]any, sequences to []any. Empty input yields nil.
func (p *Parser) Parse(data []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, zerr.Wrap(err, "unmarshal yaml")
	}
	return out, nil
}
