package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/featuredag/internal/engine"
	"github.com/specialistvlad/featuredag/internal/featurestore"
)

type inputsFile struct {
	Inputs []inputDoc `yaml:"inputs"`
}

type inputDoc struct {
	ID                    string `yaml:"id"`
	featurestore.Snapshot `yaml:",inline"`
}

// LoadInputs reads a YAML inputs file. Each input names its raw values by
// kind:
//
//	inputs:
//	  - id: sweep1
//	    doubles:
//	      "Trace:V": [-70, -10, 25, -65]
//	    strings:
//	      Threshold: "-20"
//
// Inputs without an id are named after their position.
func LoadInputs(path string) ([]engine.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inputs file: %w", err)
	}
	defer f.Close()
	return DecodeInputs(f)
}

// DecodeInputs reads inputs in the format of LoadInputs.
func DecodeInputs(r io.Reader) ([]engine.Input, error) {
	var doc inputsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding inputs: %w", err)
	}

	seen := make(map[string]bool, len(doc.Inputs))
	inputs := make([]engine.Input, 0, len(doc.Inputs))
	for i, in := range doc.Inputs {
		id := in.ID
		if id == "" {
			id = fmt.Sprintf("input-%d", i+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate input id %q", id)
		}
		seen[id] = true

		snap := in.Snapshot
		inputs = append(inputs, engine.Input{
			ID: id,
			Seed: func(store *featurestore.Store) error {
				store.Load(snap)
				return nil
			},
		})
	}
	return inputs, nil
}
