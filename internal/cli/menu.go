package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

func menuCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "List base drinks by size and condiment surcharges",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runMenu(cmd.Root().Writer, st)
		},
	}
}

func runMenu(w io.Writer, st *state) error {
	bases := st.menu.Bases()

	fmt.Fprintf(w, "[DRINKS]%17s", "Base")
	for _, size := range beverage.Sizes() {
		fmt.Fprintf(w, " %10s", size)
	}
	fmt.Fprintln(w)
	for _, b := range bases {
		item, err := st.menu.Build(b)
		if err != nil {
			return err
		}
		price := "-"
		if p, ok := beverage.Root(item).(interface{ Price() float64 }); ok {
			price = st.money.Format(p.Price())
		}
		fmt.Fprintf(w, "   %-20s %10s", b, price)
		for _, size := range beverage.Sizes() {
			sized, err := st.menu.BuildSized(b, size)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " %10s", st.money.Format(sized.Cost()))
		}
		fmt.Fprintln(w)
	}

	if len(bases) == 0 {
		return nil
	}
	ref, err := st.menu.Build(bases[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n[CONDIMENTS]")
	for _, c := range st.menu.Condiments() {
		item, err := st.menu.Build(bases[0], c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "   %-20s +%s\n", c, st.money.Format(item.Cost()-ref.Cost()))
	}
	return nil
}
