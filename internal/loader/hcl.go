package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/jar0582/procsched/internal/sched"
)

// hclRoot is the top-level layout of a process file.
type hclRoot struct {
	Processes []*hclProcess `hcl:"process,block"`
}

// hclProcess keeps raw expressions so numbers can be converted strictly.
type hclProcess struct {
	ID       string         `hcl:"id,label"`
	Burst    hcl.Expression `hcl:"burst"`
	Arrival  hcl.Expression `hcl:"arrival,optional"`
	Priority hcl.Expression `hcl:"priority,optional"`
}

// ParseHCL decodes process blocks from src. filename is only used in
// diagnostics.
func ParseHCL(src []byte, filename string) ([]sched.Process, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, diags)
	}

	procs := make([]sched.Process, 0, len(root.Processes))
	for _, block := range root.Processes {
		p := sched.Process{ID: block.ID}
		fields := []struct {
			name   string
			expr   hcl.Expression
			target *int64
		}{
			{"burst", block.Burst, &p.Burst},
			{"arrival", block.Arrival, &p.Arrival},
			{"priority", block.Priority, &p.Priority},
		}
		for _, f := range fields {
			if err := decodeInt(f.expr, f.target); err != nil {
				return nil, fmt.Errorf("%w: %s: process %q: %s: %w", ErrInvalidFile, f.expr.Range(), block.ID, f.name, err)
			}
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// decodeInt evaluates expr as a whole number. A missing optional attribute
// evaluates to null and leaves target at zero.
func decodeInt(expr hcl.Expression, target *int64) error {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}
	return gocty.FromCtyValue(val, target)
}
