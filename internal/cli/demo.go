package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

// referenceDrinks are the drinks the demo prints.
var referenceDrinks = []struct {
	base       string
	condiments []string
}{
	{"HouseBlend", []string{"Milk", "Sugar"}},
	{"Tea", []string{"Sugar"}},
	{"DarkRoast", []string{"Milk", "Milk"}},
}

func demoCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Print the cost and description of the reference drinks",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDemo(cmd.Root().Writer, st)
		},
	}
}

func buildReferenceDrinks(st *state) ([]beverage.SizedItem, error) {
	items := make([]beverage.SizedItem, 0, len(referenceDrinks))
	for _, d := range referenceDrinks {
		item, err := st.menu.Build(d.base, d.condiments...)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func runDemo(w io.Writer, st *state) error {
	items, err := buildReferenceDrinks(st)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	for _, item := range items {
		fmt.Fprintf(w, "%-40s %s\n", item.Description(), st.money.Format(item.Cost()))
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
