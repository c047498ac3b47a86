package transport

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// instanceDoc is the YAML shape of a Problem.
type instanceDoc struct {
	Supply    []int       `yaml:"supply"`
	Demand    []int       `yaml:"demand"`
	UnitCost  [][]float64 `yaml:"unit_cost"`
	FixedCost [][]float64 `yaml:"fixed_cost"`
}

// ReadYAML decodes an instance document:
//
//	supply: [20, 30]
//	demand: [25, 25]
//	unit_cost: [[2, 3], [4, 1]]
//	fixed_cost: [[0, 0], [0, 0]]
//
// Unknown keys are rejected. Every failure wraps ErrMalformedInput.
func ReadYAML(r io.Reader) (*Problem, error) {
	var doc instanceDoc

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed(nil, "empty YAML document")
		}
		return nil, malformed(err, "decode YAML")
	}

	return NewProblem(doc.Supply, doc.Demand, doc.UnitCost, doc.FixedCost)
}

// WriteYAML encodes p as a document ReadYAML accepts.
func WriteYAML(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(instanceDoc{
		Supply:    p.Supply(),
		Demand:    p.Demand(),
		UnitCost:  p.unitCost.ToRows(),
		FixedCost: p.fixedCost.ToRows(),
	}); err != nil {
		return err
	}

	return enc.Close()
}
