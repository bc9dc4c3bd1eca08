package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure"
	"github.com/Victor-armando18/beverage-commercial/internal/usecase"
)

func orderCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "order",
		Usage: "Price the reference drinks as one order through the rule pack",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "discount",
				Usage: "Discount between 0 and 1 (defaults to the configured discount)",
			},
			&cli.StringFlag{
				Name:  "patch",
				Usage: "RFC 6902 JSON patch applied to the order before pricing, e.g. '[{\"op\":\"replace\",\"path\":\"/lines/1/qty\",\"value\":3}]'",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the full result as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			discount := st.cfg.DiscountPercentage
			if cmd.IsSet("discount") {
				discount = cmd.Float("discount")
			}

			items, err := buildReferenceDrinks(st)
			if err != nil {
				return err
			}
			lines := make([]domain.OrderLine, 0, len(items))
			for _, item := range items {
				lines = append(lines, domain.NewOrderLine(item, 1))
			}
			order := domain.NewOrder(st.cfg.Currency, lines...)
			order.DiscountPercentage = discount

			if p := cmd.String("patch"); p != "" {
				if order, err = infrastructure.ApplyOrderPatch(order, []byte(p)); err != nil {
					return cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to patch order", err)
				}
			}

			svc := usecase.NewPricingService(
				infrastructure.NewFileRuleLoader(st.cfg.RulesDir),
				infrastructure.NewJsonLogicExecutor(),
			)
			res, err := svc.PriceOrder(ctx, order, st.cfg.RulesVersion)
			if err != nil {
				return fmt.Errorf("failed to price order: %w", err)
			}

			w := cmd.Root().Writer
			if cmd.Bool("json") {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			displayExecutionSummary(w, st, res)
			return nil
		},
	}
}

func displayExecutionSummary(w io.Writer, st *state, res *domain.EngineResult) {
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "[1. LINES]")
	for _, l := range res.FinalOrder.Lines {
		fmt.Fprintf(w, "   %dx %-36s %s\n", l.Qty, l.Description, st.money.Format(l.Total()))
	}

	fmt.Fprintln(w, "\n[2. EXECUTION LOG]")
	for _, step := range res.ExecutionLog {
		fmt.Fprintf(w, "   [%-12s] %-16s -> %s\n", strings.ToUpper(step.Phase), step.RuleID, step.Action)
	}

	fmt.Fprintln(w, "\n[3. GUARDS]")
	if len(res.GuardsHit) == 0 {
		fmt.Fprintln(w, "   none")
	}
	for _, g := range res.GuardsHit {
		fmt.Fprintf(w, "   BLOCKED [%s] %s\n", g.RuleID, g.Context)
	}

	fmt.Fprintln(w, "\n[4. TOTALS]")
	fmt.Fprintf(w, "   Currency: %s\n", st.money.Currency())
	if res.FinalOrder.DiscountValue != 0 {
		fmt.Fprintf(w, "   Discount: %s (%s per cup)\n",
			st.money.Format(res.FinalOrder.DiscountValue), st.money.Format(res.FinalOrder.DiscountPerCup))
	}
	fmt.Fprintf(w, "   Subtotal: %s\n", st.money.Format(res.FinalOrder.BaseValue))
	for name, tax := range res.FinalOrder.AppliedTaxes {
		fmt.Fprintf(w, "   %-9s %s\n", name+":", st.money.Format(tax))
	}
	fmt.Fprintf(w, "   Total:    %s\n", st.money.Format(res.TotalValue))
	fmt.Fprintf(w, "   Rules:    %s\n", res.RulesVersion)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
