package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

func testOrder() domain.Order {
	return domain.Order{
		ID:       "ORD-1",
		Currency: "USD",
		Lines: []domain.OrderLine{
			domain.NewOrderLine(beverage.Wrap(beverage.NewHouseBlend(), beverage.AddMilk, beverage.AddSugar), 1),
			domain.NewOrderLine(beverage.Wrap(beverage.NewTea(), beverage.AddSugar), 2),
		},
		BaseValue:          10,
		DiscountPercentage: 0.5,
		TotalItems:         3,
	}
}

func TestExecuteStandardLogic(t *testing.T) {
	exec := NewJsonLogicExecutor()
	vars := map[string]any{"order": testOrder()}

	out, err := exec.Execute(context.Background(), map[string]any{
		"*": []any{map[string]any{"var": "order.baseValue"}, 0.08},
	}, vars)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, out, 1e-9)

	out, err = exec.Execute(context.Background(), map[string]any{
		">": []any{map[string]any{"var": "order.totalItems"}, 20},
	}, vars)
	require.NoError(t, err)
	assert.Equal(t, false, out)
}

func TestExecuteRoundWithNestedRule(t *testing.T) {
	exec := NewJsonLogicExecutor()
	vars := map[string]any{"order": testOrder()}

	out, err := exec.Execute(context.Background(), map[string]any{
		"round": []any{
			map[string]any{"*": []any{map[string]any{"var": "order.baseValue"}, 0.333}},
			2,
		},
	}, vars)
	require.NoError(t, err)
	assert.Equal(t, 3.33, out)
}

func TestExecuteForeach(t *testing.T) {
	exec := NewJsonLogicExecutor()
	vars := map[string]any{"order": testOrder()}

	out, err := exec.Execute(context.Background(), map[string]any{
		"foreach": []any{
			map[string]any{"var": "order.lines"},
			map[string]any{"*": []any{
				map[string]any{"var": "item.unitCost"},
				map[string]any{"var": "item.qty"},
			}},
		},
	}, vars)
	require.NoError(t, err)
	assert.InDelta(t, 5.23+2*2.73, out, 1e-9)
}

func TestExecuteForeachInvalid(t *testing.T) {
	exec := NewJsonLogicExecutor()
	_, err := exec.Execute(context.Background(), map[string]any{"foreach": "nope"}, nil)
	assert.ErrorIs(t, err, domain.ErrRuleExecutionFailed)
}

func TestExecuteCustomOperator(t *testing.T) {
	exec := NewJsonLogicExecutor()
	exec.RegisterCustomOperator("double", func(args ...any) any {
		f, _ := anyToFloat(args[0])
		return f * 2
	})

	out, err := exec.Execute(context.Background(), map[string]any{
		"double": map[string]any{"var": "order.baseValue"},
	}, map[string]any{"order": testOrder()})
	require.NoError(t, err)
	assert.Equal(t, 20.0, out)
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJsonLogicExecutor().Execute(ctx, map[string]any{"var": "order"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomRound(t *testing.T) {
	assert.Equal(t, 0.0, CustomRound())
	assert.Equal(t, 5.0, CustomRound(4.6))
	assert.Equal(t, 1.04, CustomRound(1.0352, 2))
}

func TestCustomAllocate(t *testing.T) {
	assert.Equal(t, 0.0, CustomAllocate(10.0))
	assert.Equal(t, 0.0, CustomAllocate(10.0, 0))
	assert.Equal(t, 2.5, CustomAllocate(10.0, 4))
}

func TestExecuteNestedCustomOperators(t *testing.T) {
	exec := NewJsonLogicExecutor()
	vars := map[string]any{"order": testOrder()}

	tests := []struct {
		name     string
		rule     map[string]any
		expected float64
	}{
		{
			name: "round inside a standard operator",
			rule: map[string]any{"+": []any{
				map[string]any{"round": []any{1.234, 2}},
				1,
			}},
			expected: 2.23,
		},
		{
			name: "allocate inside round",
			rule: map[string]any{"round": []any{
				map[string]any{"allocate": []any{
					map[string]any{"var": "order.baseValue"},
					map[string]any{"var": "order.totalItems"},
				}},
				2,
			}},
			expected: 3.33,
		},
		{
			name: "round deep inside an array",
			rule: map[string]any{"max": []any{
				1,
				map[string]any{"*": []any{
					map[string]any{"round": []any{map[string]any{"var": "order.baseValue"}, 0}},
					2,
				}},
			}},
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := exec.Execute(context.Background(), tt.rule, vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, out, 1e-9)
		})
	}
}

func TestExecuteRejectsSeveralCustomOperatorsInOneNode(t *testing.T) {
	exec := NewJsonLogicExecutor()
	_, err := exec.Execute(context.Background(), map[string]any{
		"+": []any{map[string]any{
			"round":    []any{1.5},
			"allocate": []any{10, 2},
		}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrRuleExecutionFailed)
}
