package hcl

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the variables and functions settings expressions can use.
func newEvalContext(now time.Time, workdir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"today":   cty.StringVal(now.Format(time.DateOnly)),
			"workdir": cty.StringVal(workdir),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}
