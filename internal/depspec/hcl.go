package depspec

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// featureBlock is a `feature "Lib:name" { ... }` block.
type featureBlock struct {
	Name      string   `hcl:"name,label"`
	DependsOn []string `hcl:"depends_on,optional"`
}

// settingsBlock holds free-form attributes that become string metadata.
type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot is used to decode all top-level blocks from any file.
type fileRoot struct {
	Features []*featureBlock  `hcl:"feature,block"`
	Settings []*settingsBlock `hcl:"settings,block"`
	Remain   hcl.Body         `hcl:",remain"`
}

// hclLoader parses HCL specification files. One parser is shared across
// files so diagnostics can refer back to the sources.
type hclLoader struct {
	parser *hclparse.Parser
}

func newHCLLoader() *hclLoader {
	return &hclLoader{parser: hclparse.NewParser()}
}

// loadFile parses one HCL file into s.
func (l *hclLoader) loadFile(path string, s *Spec) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &UnopenableSpecificationError{Path: path, Err: err}
	}

	file, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	for _, f := range root.Features {
		s.Deps.declare(f.Name, f.DependsOn...)
	}
	for _, block := range root.Settings {
		if err := decodeSettings(block.Body, s.Settings); err != nil {
			return fmt.Errorf("failed to decode settings in %s: %w", path, err)
		}
	}
	return nil
}

// decodeSettings evaluates every attribute of body as a constant and stores
// its string form in dst.
func decodeSettings(body hcl.Body, dst map[string]string) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}

	// Deterministic order keeps the first reported error stable.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		str, err := settingString(val)
		if err != nil {
			return fmt.Errorf("setting %q: %w", name, err)
		}
		dst[name] = str
	}
	return nil
}

// settingString converts a primitive cty value to its string form.
func settingString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	if !val.Type().IsPrimitiveType() {
		return "", fmt.Errorf("value must be a string, number or bool, got %s", val.Type().FriendlyName())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return str.AsString(), nil
}
