package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/schema"
)

// translateNode converts the HCL-specific node schema into the agnostic model.
func (l *Loader) translateNode(n *schema.Node) (*config.Node, error) {
	inputs, err := evalStringList(n.Inputs, "inputs")
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}
	outputs, err := evalStringList(n.Outputs, "outputs")
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}
	tags, err := evalStringList(n.Tags, "tags")
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}

	return &config.Node{
		Name:    n.Name,
		Inputs:  inputs,
		Outputs: outputs,
		Tags:    tags,
	}, nil
}

// evalStringList statically evaluates an attribute expression into a list
// of strings. Pipeline files carry no variables, so evaluation uses a nil
// context; anything that needs one is an error here.
func evalStringList(expr hcl.Expression, attr string) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("cannot evaluate %s: %w", attr, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of strings, got %s: %w", attr, val.Type().FriendlyName(), err)
	}

	var out []string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", attr, err)
	}
	return out, nil
}
