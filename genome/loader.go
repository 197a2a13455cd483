// Package genome loads a phenome's wiring — input/output counts and a
// weighted connection list — from a YAML document, the one piece of
// external I/O this module accepts: everything downstream (graph
// compilation, activation, evaluation) consumes only the typed
// graph.WeightedConnection values this package produces.
package genome

import (
	"github.com/nn-phenome/phenomecore/graph"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
	"io"
)

// Document is a decoded genome YAML document after every field has been
// coerced to its typed form: the input/output counts and the
// graph.WeightedConnection values.
type Document struct {
	InputCount  int
	OutputCount int
	Connections []graph.WeightedConnection
}

// Load decodes a genome document from r. YAML is decoded into a generic
// map first, the way yamlGenomeReader decodes into map[string]interface{},
// because genome documents are hand-authored and tolerate loose field
// typing (ints written as floats, weights written as ints, and so on);
// every field is then coerced with spf13/cast rather than asserted via a
// type switch, so a reasonably-shaped document never fails to parse on a
// representation technicality.
func Load(r io.Reader) (*Document, error) {
	var raw map[string]interface{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode genome YAML")
	}

	gm, ok := raw["genome"].(map[string]interface{})
	if !ok {
		return nil, errors.New("genome: missing top-level \"genome\" key")
	}

	inputCount, err := cast.ToIntE(gm["inputCount"])
	if err != nil {
		return nil, errors.Wrap(err, "genome: inputCount")
	}
	outputCount, err := cast.ToIntE(gm["outputCount"])
	if err != nil {
		return nil, errors.Wrap(err, "genome: outputCount")
	}

	rawConns, ok := gm["connections"].([]interface{})
	if !ok {
		return nil, errors.New("genome: missing or malformed \"connections\" list")
	}

	conns := make([]graph.WeightedConnection, 0, len(rawConns))
	for i, rc := range rawConns {
		cm, ok := rc.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("genome: connection %d is not a mapping", i)
		}
		conn, err := readConnection(cm)
		if err != nil {
			return nil, errors.Wrapf(err, "genome: connection %d", i)
		}
		conns = append(conns, conn)
	}

	return &Document{
		InputCount:  inputCount,
		OutputCount: outputCount,
		Connections: conns,
	}, nil
}

func readConnection(cm map[string]interface{}) (graph.WeightedConnection, error) {
	source, err := cast.ToIntE(cm["source"])
	if err != nil {
		return graph.WeightedConnection{}, errors.Wrap(err, "source")
	}
	target, err := cast.ToIntE(cm["target"])
	if err != nil {
		return graph.WeightedConnection{}, errors.Wrap(err, "target")
	}
	weight, err := cast.ToFloat64E(cm["weight"])
	if err != nil {
		return graph.WeightedConnection{}, errors.Wrap(err, "weight")
	}
	return graph.WeightedConnection{Source: source, Target: target, Weight: weight}, nil
}

// BuildCyclic is a convenience that loads a document and compiles it
// straight into a cyclic runtime graph.
func BuildCyclic(r io.Reader) (*graph.Cyclic, error) {
	doc, err := Load(r)
	if err != nil {
		return nil, err
	}
	return graph.BuildCyclic(doc.Connections, doc.InputCount, doc.OutputCount)
}
