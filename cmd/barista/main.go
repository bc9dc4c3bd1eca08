package main

import "github.com/Victor-armando18/beverage-commercial/internal/cli"

func main() {
	cli.Execute()
}
