// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/staranto/bgplan/internal/game"
)

// eval evaluates an HCL expression with the view and list in scope.
func (s *Session) eval(expression string) (string, error) {
	ctx := &hcl.EvalContext{
		Variables: s.variables(),
		Functions: buildFunctionMap(),
	}

	expr, diags := hclsyntax.ParseExpression([]byte(expression), "console", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return "", fmt.Errorf("error parsing expression: %s", diags.Error())
	}

	result, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", fmt.Errorf("error evaluating expression: %s", diags.Error())
	}

	return formatCtyValue(result), nil
}

// variables exposes view and list as tuples of game objects keyed by column
// name, plus count (view size) and total (collection size).
func (s *Session) variables() map[string]cty.Value {
	view := s.currentView()
	return map[string]cty.Value{
		"view":  gamesToCty(view, s.columns),
		"list":  gamesToCty(s.list.Games(), s.columns),
		"count": cty.NumberIntVal(int64(len(view))),
		"total": cty.NumberIntVal(int64(s.planner.Total())),
	}
}

func gamesToCty(games []game.Game, columns *game.Registry) cty.Value {
	if len(games) == 0 {
		return cty.EmptyTupleVal
	}

	vals := make([]cty.Value, 0, len(games))
	for _, g := range games {
		attrs := make(map[string]cty.Value)
		for _, c := range columns.Columns() {
			attrs[c.Name] = valueToCty(c.Value(g))
		}
		vals = append(vals, cty.ObjectVal(attrs))
	}
	return cty.TupleVal(vals)
}

func valueToCty(v game.Value) cty.Value {
	switch v.Kind {
	case game.KindInteger:
		return cty.NumberIntVal(v.Int)
	case game.KindDecimal:
		if math.IsNaN(v.Dec) || math.IsInf(v.Dec, 0) {
			return cty.NullVal(cty.Number)
		}
		return cty.NumberFloatVal(v.Dec)
	default:
		return cty.StringVal(v.Text)
	}
}

// sumFunc adds up a collection of numbers.
var sumFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "numbers", Type: cty.DynamicPseudoType},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		if !args[0].CanIterateElements() {
			return cty.NilVal, errors.New("sum needs a list of numbers")
		}

		total := cty.Zero
		for it := args[0].ElementIterator(); it.Next(); {
			_, v := it.Element()
			if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
				return cty.NilVal, errors.New("sum needs a list of numbers")
			}
			total = total.Add(v)
		}
		return total, nil
	},
})

// buildFunctionMap returns the functions available to console expressions.
func buildFunctionMap() map[string]function.Function {
	return map[string]function.Function{
		// Arithmetic
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"pow":   stdlib.PowFunc,
		"sum":   sumFunc,

		// Strings
		"format":    stdlib.FormatFunc,
		"join":      stdlib.JoinFunc,
		"lower":     stdlib.LowerFunc,
		"replace":   stdlib.ReplaceFunc,
		"split":     stdlib.SplitFunc,
		"substr":    stdlib.SubstrFunc,
		"title":     stdlib.TitleFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"upper":     stdlib.UpperFunc,

		// Collections
		"coalesce": stdlib.CoalesceFunc,
		"concat":   stdlib.ConcatFunc,
		"contains": stdlib.ContainsFunc,
		"distinct": stdlib.DistinctFunc,
		"element":  stdlib.ElementFunc,
		"flatten":  stdlib.FlattenFunc,
		"keys":     stdlib.KeysFunc,
		"length":   stdlib.LengthFunc,
		"lookup":   stdlib.LookupFunc,
		"reverse":  stdlib.ReverseListFunc,
		"slice":    stdlib.SliceFunc,
		"sort":     stdlib.SortFunc,
		"values":   stdlib.ValuesFunc,

		// Data
		"formatlist": stdlib.FormatListFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"range":      stdlib.RangeFunc,
		"regex":      stdlib.RegexFunc,
		"regexall":   stdlib.RegexAllFunc,

		"try": tryfunc.TryFunc,
		"can": tryfunc.CanFunc,
	}
}

// formatCtyValue renders a value for display. Collections are shown as JSON.
func formatCtyValue(val cty.Value) string {
	if val.IsNull() {
		return "null"
	}

	switch val.Type() {
	case cty.Bool:
		return fmt.Sprintf("%t", val.True())
	case cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return fmt.Sprintf("%d", i)
		}
		f, _ := bf.Float64()
		return fmt.Sprintf("%g", f)
	case cty.String:
		return val.AsString()
	default:
		if out, err := json.Marshal(ctyValueToGo(val)); err == nil {
			return string(out)
		}
		return val.GoString()
	}
}

func ctyValueToGo(val cty.Value) interface{} {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i
		}
		f, _ := bf.Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty.IsObjectType() || ty.IsMapType():
		result := make(map[string]interface{})
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			result[k.AsString()] = ctyValueToGo(v)
		}
		return result
	case val.CanIterateElements():
		result := []interface{}{}
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			result = append(result, ctyValueToGo(v))
		}
		return result
	default:
		return val.GoString()
	}
}
