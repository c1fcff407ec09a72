package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpwhite3/phoney"
)

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <template-file>",
		Short: "Validate a template without generating data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := readTemplateFile(args[0])
			if err != nil {
				return err
			}

			valid, verrs, warnings := phoney.NewEngine().Validate(tpl, strict)
			for _, warning := range warnings {
				fmt.Printf("warning: %s\n", warning)
			}
			if valid {
				fmt.Println("template is valid")
				return nil
			}
			for _, verr := range verrs {
				fmt.Printf("%s: [%s] %s", verr.Field, verr.Kind, verr.Message)
				if len(verr.Suggestions) > 0 {
					fmt.Printf(" (did you mean: %v)", verr.Suggestions)
				}
				fmt.Println()
			}
			return errors.New("template is invalid")
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reserved for stricter validation modes")
	return cmd
}
