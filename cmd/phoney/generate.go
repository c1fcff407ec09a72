package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpwhite3/phoney"
	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/format"
	"github.com/jpwhite3/phoney/pkg/template"
)

func newGenerateCmd() *cobra.Command {
	var (
		count       int
		seed        int64
		seedSet     bool
		locale      string
		unique      bool
		outFormat   string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate [template-file]",
		Short: "Generate records from a template file, or one generator interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedSet = cmd.Flags().Changed("seed")

			if len(args) == 0 {
				if !interactive {
					return errors.New("a template file is required unless --interactive is set")
				}
				return runInteractive(count)
			}

			tpl, err := readTemplateFile(args[0])
			if err != nil {
				return err
			}

			opts := []template.ProcessOption{
				template.WithLocale(locale),
				template.WithUnique(unique),
			}
			if seedSet {
				opts = append(opts, template.WithSeed(seed))
			}

			records, err := phoney.Generate(tpl, count, opts...)
			if err != nil {
				return err
			}

			if outFormat == "csv" {
				csvText, err := format.RecordsToCSV(records)
				if err != nil {
					return err
				}
				fmt.Print(csvText)
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of records to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible output")
	cmd.Flags().StringVar(&locale, "locale", "", "locale recorded for the run")
	cmd.Flags().BoolVar(&unique, "unique", false, "best-effort unique values")
	cmd.Flags().StringVar(&outFormat, "format", "json", "output format: json or csv")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a generator interactively")
	return cmd
}

func runInteractive(count int) error {
	registry := fake.New()

	var name string
	prompt := &survey.Select{
		Message:  "Generator:",
		Options:  registry.Names(),
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return err
	}

	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		value, err := registry.Invoke(name, nil)
		if err != nil {
			return err
		}
		fmt.Printf("%v\n", value)
	}
	return nil
}

func readTemplateFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	var tpl any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return nil, fmt.Errorf("parse template: %w", err)
		}
		tpl = normalizeYAML(tpl)
	default:
		if err := json.Unmarshal(data, &tpl); err != nil {
			return nil, fmt.Errorf("parse template: %w", err)
		}
	}
	return tpl, nil
}

// normalizeYAML rewrites yaml.v3's map[string]any trees so nested maps
// and slices match the shapes the engine walks.
func normalizeYAML(node any) any {
	switch value := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, child := range value {
			out[key] = normalizeYAML(child)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, child := range value {
			out[i] = normalizeYAML(child)
		}
		return out
	default:
		return node
	}
}
