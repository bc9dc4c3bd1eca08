package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/diegoholiveira/jsonlogic/v3"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/money"
	"github.com/Victor-armando18/beverage-commercial/internal/interfaces"
)

// CustomOperator receives its arguments already evaluated.
type CustomOperator func(args ...any) any

// JsonLogicExecutor evaluates pricing rules. Custom operators may appear at any
// depth: they are evaluated first and their results handed to jsonlogic as
// literals. foreach is only recognised at the top level of a rule.
type JsonLogicExecutor struct {
	customOps map[string]CustomOperator
}

func NewJsonLogicExecutor() interfaces.RuleExecutor {
	j := &JsonLogicExecutor{
		customOps: make(map[string]CustomOperator),
	}
	j.RegisterCustomOperator("round", CustomRound)
	j.RegisterCustomOperator("allocate", CustomAllocate)
	return j
}

func (j *JsonLogicExecutor) RegisterCustomOperator(name string, logic func(args ...any) any) {
	j.customOps[name] = logic
}

func (j *JsonLogicExecutor) Execute(ctx context.Context, ruleData map[string]any, contextVars map[string]any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if args, ok := ruleData["foreach"]; ok {
		return j.handleForeach(ctx, args, contextVars)
	}

	opName, fn, err := j.customOp(ruleData)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		return j.handleManualEval(ctx, ruleData[opName], contextVars, fn)
	}

	inlined, err := j.inlineCustomOps(ctx, ruleData, contextVars)
	if err != nil {
		return nil, err
	}
	ruleJSON, err := json.Marshal(inlined)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}
	dataJSON, err := json.Marshal(contextVars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}

	var resultBuffer bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &resultBuffer); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}

	resultStr := strings.TrimSpace(resultBuffer.String())
	if resultStr == "" || resultStr == "null" {
		return nil, nil
	}

	var res any
	decoder := json.NewDecoder(strings.NewReader(resultStr))
	decoder.UseNumber()
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}
	return finalizeValue(res), nil
}

// customOp returns the custom operator named by a key of node, if any. A node
// naming two custom operators is rejected.
func (j *JsonLogicExecutor) customOp(node map[string]any) (string, CustomOperator, error) {
	var names []string
	for key := range node {
		if _, ok := j.customOps[key]; ok {
			names = append(names, key)
		}
	}
	switch len(names) {
	case 0:
		return "", nil, nil
	case 1:
		return names[0], j.customOps[names[0]], nil
	}
	slices.Sort(names)
	return "", nil, fmt.Errorf("%w: one rule node names several custom operators %v",
		domain.ErrRuleExecutionFailed, names)
}

// inlineCustomOps replaces every custom operator below node with its value.
func (j *JsonLogicExecutor) inlineCustomOps(ctx context.Context, node any, data map[string]any) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		opName, fn, err := j.customOp(v)
		if err != nil {
			return nil, err
		}
		if fn != nil {
			return j.handleManualEval(ctx, v[opName], data, fn)
		}
		out := make(map[string]any, len(v))
		for key, child := range v {
			if out[key], err = j.inlineCustomOps(ctx, child, data); err != nil {
				return nil, err
			}
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			var err error
			if out[i], err = j.inlineCustomOps(ctx, child, data); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return node, nil
}

// handleForeach sums logic evaluated once per element of a collection. Each
// evaluation sees the element as "item" next to the original "order".
func (j *JsonLogicExecutor) handleForeach(ctx context.Context, args any, data map[string]any) (any, error) {
	params, ok := args.([]any)
	if !ok || len(params) < 2 {
		return nil, fmt.Errorf("%w: foreach expects [collection, logic]", domain.ErrRuleExecutionFailed)
	}
	logic, ok := params[1].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: foreach logic must be an object", domain.ErrRuleExecutionFailed)
	}

	var items []any
	b, err := json.Marshal(resolveVar(params[0], data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: foreach collection is not a list", domain.ErrRuleExecutionFailed)
	}

	values := make([]float64, 0, len(items))
	for _, item := range items {
		itemCtx := map[string]any{
			"item":  item,
			"order": data["order"],
		}
		res, err := j.Execute(ctx, logic, itemCtx)
		if err != nil {
			return nil, err
		}
		if f, ok := anyToFloat(res); ok {
			values = append(values, f)
		}
	}
	return money.Sum(values...), nil
}

func (j *JsonLogicExecutor) handleManualEval(ctx context.Context, args any, data map[string]any, fn CustomOperator) (any, error) {
	list, ok := args.([]any)
	if !ok {
		list = []any{args}
	}

	params := make([]any, 0, len(list))
	for _, item := range list {
		subRule, isRule := item.(map[string]any)
		if !isRule {
			params = append(params, item)
			continue
		}
		if _, isVar := subRule["var"]; isVar {
			params = append(params, resolveVar(subRule, data))
			continue
		}
		res, err := j.Execute(ctx, subRule, data)
		if err != nil {
			return nil, err
		}
		params = append(params, res)
	}
	return fn(params...), nil
}

// resolveVar walks a dotted {"var": "a.b.c"} path through data.
func resolveVar(arg any, data map[string]any) any {
	m, ok := arg.(map[string]any)
	if !ok {
		return arg
	}
	path, ok := m["var"].(string)
	if !ok {
		return arg
	}

	var current any = data
	for _, part := range strings.Split(path, ".") {
		tempBytes, err := json.Marshal(current)
		if err != nil {
			return nil
		}
		var tempMap map[string]any
		if err := json.Unmarshal(tempBytes, &tempMap); err != nil {
			return nil
		}
		current = tempMap[part]
		if current == nil {
			return nil
		}
	}
	return finalizeValue(current)
}

func finalizeValue(val any) any {
	if n, ok := val.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return val
}

// CustomRound rounds args[0] to args[1] decimal places (default 0).
func CustomRound(args ...any) any {
	if len(args) == 0 {
		return 0.0
	}
	val, _ := anyToFloat(args[0])
	precision := 0
	if len(args) > 1 {
		if p, ok := anyToFloat(args[1]); ok {
			precision = int(p)
		}
	}
	return money.RoundTo(val, precision)
}

// CustomAllocate splits args[0] evenly over args[1] parts.
func CustomAllocate(args ...any) any {
	if len(args) < 2 {
		return 0.0
	}
	val, _ := anyToFloat(args[0])
	parts, _ := anyToFloat(args[1])
	if parts == 0 {
		return 0.0
	}
	return val / parts
}

func anyToFloat(i any) (float64, bool) {
	switch v := i.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
