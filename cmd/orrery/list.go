// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"cogentcore.org/orrery/planets"
	"github.com/muesli/termenv"
)

// List prints the planet catalog.
func List(c *Config) error {
	if err := applyEnv(c); err != nil {
		return err
	}
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}
	return list(termenv.NewOutput(os.Stdout), cat)
}

func list(out *termenv.Output, cat *planets.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tTYPE\tDISTANCE\tMOONS\tRINGS")
	for _, b := range cat.All() {
		swatch := out.String("●").Foreground(out.Color(b.Color))
		rings := ""
		if b.Rings {
			rings = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g million km\t%d\t%s\n", swatch, b.ID, b.Name, b.Type, b.DistanceFromSun, b.Moons, rings)
	}
	return tw.Flush()
}
