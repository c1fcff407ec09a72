package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/provider"
)

func newProvidersCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers and their generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := provider.NewCatalog(fake.New())
			for _, name := range catalog.List() {
				p, _ := catalog.Get(name)
				fmt.Printf("%s (%d generators)\n", p.Name, p.GeneratorCount)
				if verbose {
					fmt.Printf("  %s\n", strings.Join(p.Generators, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print generator names per provider")
	return cmd
}
