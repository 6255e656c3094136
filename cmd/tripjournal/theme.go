package main

import (
	"fmt"

	"github.com/akeil/tripjournal/pkg/theme"
)

func doTheme(destination, country string, zones bool) error {
	th := theme.Classify(destination, country)
	fmt.Printf("%v\n", th)
	if !zones {
		return nil
	}

	table := theme.NewTable()
	for _, id := range theme.Zones() {
		decos := table.Decorations(th, id)
		if len(decos) == 0 {
			continue
		}
		fmt.Printf("  %v\n", id)
		for _, d := range decos {
			fmt.Printf("    - %-12v at %5.1f, %5.1f size %4.1f\n", d.Motif, d.X, d.Y, d.Size)
		}
	}
	return nil
}
