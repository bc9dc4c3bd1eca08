package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/diff"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/money"
	"github.com/Victor-armando18/beverage-commercial/internal/interfaces"
)

type Differ interface {
	Diff(before, after map[string]any) map[string]any
}

type PricingService struct {
	loader   interfaces.RulePackLoader
	executor interfaces.RuleExecutor
	differ   Differ
}

func NewPricingService(loader interfaces.RulePackLoader, executor interfaces.RuleExecutor) interfaces.PricingFacade {
	return &PricingService{loader: loader, executor: executor, differ: &diff.Differ{}}
}

// NormalizeVersion turns "1" into "v1".
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

func (s *PricingService) PriceOrder(ctx context.Context, initialOrder domain.Order, version string) (*domain.EngineResult, error) {
	version = NormalizeVersion(version)
	if err := validateOrder(initialOrder); err != nil {
		return nil, err
	}

	rulePack, err := s.loader.Load(ctx, version)
	if err != nil {
		return nil, err
	}

	currentOrder := initialOrder
	currentOrder.RulesVersion = version
	currentOrder.AppliedTaxes = copyTaxes(initialOrder.AppliedTaxes)
	s.hydrateData(&currentOrder)

	executionLog := []domain.ExecutionStep{}
	guardsHit := []domain.GuardViolation{}
	totalSet := false

	for _, phase := range domain.Phases() {
		for _, rule := range s.getRules(rulePack.Rules, phase) {
			oldValue := s.getValue(rule.OutputKey, &currentOrder)
			out, err := s.executor.Execute(ctx, rule.Logic, map[string]any{"order": currentOrder})
			if err != nil {
				return nil, cerrors.WrapWithContext(cerrors.ErrCodeInternal, "rule failed", err,
					map[string]any{"rule": rule.ID, "phase": phase, "version": version})
			}
			if out == nil {
				continue
			}

			if phase == domain.PhaseGuards {
				if v, ok := out.(bool); ok && v {
					msg := rule.ErrorMessage
					if msg == "" {
						msg = "restrictive condition reached"
					}
					guardsHit = append(guardsHit, domain.GuardViolation{
						RuleID:  rule.ID,
						Reason:  "Violation Detected",
						Context: msg,
					})
					guardHits.WithLabelValues(rule.ID).Inc()
					slog.Warn("guard hit", "order", currentOrder.ID, "rule", rule.ID)
				}
				continue
			}

			if !s.applyUpdate(rule.OutputKey, out, &currentOrder) {
				slog.Debug("rule result ignored", "rule", rule.ID, "output_key", rule.OutputKey, "result", out)
				continue
			}
			if rule.OutputKey == "order.totalValue" {
				totalSet = true
			}
			newValue := s.getValue(rule.OutputKey, &currentOrder)
			action := fmt.Sprintf("Changed %s: [%.2f -> %.2f]", rule.OutputKey, oldValue, newValue)
			if newValue == oldValue {
				action = fmt.Sprintf("Set %s: [%.2f]", rule.OutputKey, newValue)
			}
			executionLog = append(executionLog, domain.ExecutionStep{
				Phase:  phase,
				RuleID: rule.ID,
				Action: action,
			})
			slog.Debug("rule applied", "rule", rule.ID, "phase", phase, "from", oldValue, "to", newValue)
		}
	}

	if !totalSet {
		amounts := []float64{currentOrder.BaseValue}
		for _, taxValue := range currentOrder.AppliedTaxes {
			amounts = append(amounts, taxValue)
		}
		currentOrder.TotalValue = money.RoundTo(money.Sum(amounts...), 2)
	}

	stateFragment, err := toMap(currentOrder)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to build state fragment", err)
	}
	initialState, err := toMap(initialOrder)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to build state fragment", err)
	}
	patch, err := infrastructure.OrderMergePatch(initialOrder, currentOrder)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to compute server delta", err)
	}

	ordersPriced.WithLabelValues(version).Inc()
	slog.Info("order priced",
		"order", currentOrder.ID,
		"rules_version", version,
		"lines", len(currentOrder.Lines),
		"total", currentOrder.TotalValue,
		"guards_hit", len(guardsHit))

	return &domain.EngineResult{
		FinalOrder:    currentOrder,
		TotalValue:    currentOrder.TotalValue,
		StateFragment: stateFragment,
		Delta:         s.differ.Diff(initialState, stateFragment),
		ServerDelta:   string(patch) != "{}",
		RulesVersion:  version,
		GuardsHit:     guardsHit,
		ExecutionLog:  executionLog,
	}, nil
}

func validateOrder(order domain.Order) error {
	if math.IsNaN(order.DiscountPercentage) || order.DiscountPercentage < 0 || order.DiscountPercentage > 1 {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "discount must be between 0 and 1",
			map[string]any{"order": order.ID, "discount": order.DiscountPercentage})
	}
	for i, line := range order.Lines {
		if line.Qty <= 0 {
			return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "line quantity must be positive",
				map[string]any{"order": order.ID, "line": i, "qty": line.Qty})
		}
	}
	return nil
}

func (s *PricingService) hydrateData(order *domain.Order) {
	var q int
	totals := make([]float64, 0, len(order.Lines))
	for _, l := range order.Lines {
		q += l.Qty
		totals = append(totals, l.Total())
	}
	order.TotalItems = q
	if order.BaseValue == 0 {
		order.BaseValue = money.Sum(totals...)
	}
}

func (s *PricingService) getRules(rules []domain.RuleConfig, phase string) []domain.RuleConfig {
	var f []domain.RuleConfig
	for _, r := range rules {
		if r.Phase == phase {
			f = append(f, r)
		}
	}
	return f
}

const taxKeyPrefix = "order.appliedTaxes."

func (s *PricingService) getValue(key string, order *domain.Order) float64 {
	switch {
	case key == "order.baseValue":
		return order.BaseValue
	case key == "order.totalValue":
		return order.TotalValue
	case key == "order.discountPercentage":
		return order.DiscountPercentage
	case key == "order.discountValue":
		return order.DiscountValue
	case key == "order.discountPerCup":
		return order.DiscountPerCup
	case strings.HasPrefix(key, taxKeyPrefix):
		return order.AppliedTaxes[strings.TrimPrefix(key, taxKeyPrefix)]
	}
	return 0
}

func (s *PricingService) applyUpdate(key string, val any, order *domain.Order) bool {
	var f float64
	switch v := val.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return false
	}

	switch {
	case key == "order.baseValue":
		order.BaseValue = f
	case key == "order.totalValue":
		order.TotalValue = f
	case key == "order.discountPercentage":
		order.DiscountPercentage = f
	case key == "order.discountValue":
		order.DiscountValue = f
	case key == "order.discountPerCup":
		order.DiscountPerCup = f
	case strings.HasPrefix(key, taxKeyPrefix):
		if order.AppliedTaxes == nil {
			order.AppliedTaxes = make(map[string]float64)
		}
		order.AppliedTaxes[strings.TrimPrefix(key, taxKeyPrefix)] = f
	default:
		return false
	}
	return true
}

func copyTaxes(src map[string]float64) map[string]float64 {
	if src == nil {
		return nil
	}
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func toMap(order domain.Order) (map[string]any, error) {
	data, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
