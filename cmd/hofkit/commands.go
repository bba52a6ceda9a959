package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/hofkit/arith"
	"github.com/kbukum/hofkit/internal/app"
	"github.com/kbukum/hofkit/util"
)

func (c *cli) zipCmd() *cobra.Command {
	var ops string
	cmd := &cobra.Command{
		Use:     "zip OPERAND...",
		Short:   "Fold operations over operands, overwriting each operand with the running result",
		Example: "  hofkit zip --ops add,multiply,add,divide 1 1 3 0 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := util.ParseFloats(args)
			if err != nil {
				return err
			}
			result, err := c.svc.Zip(cmd.Context(), operands, arith.SplitList(ops))
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), map[string]any{"result": result, "operands": operands}, func(w io.Writer) {
				fmt.Fprintf(w, "result:   %v\noperands: %v\n", result, operands)
			})
		},
	}
	cmd.Flags().StringVarP(&ops, "ops", "o", "", "comma-separated operations, one fewer than the operands")
	return cmd
}

func (c *cli) evaluateCmd() *cobra.Command {
	var ops string
	cmd := &cobra.Command{
		Use:     "evaluate OPERAND...",
		Short:   "Fold operations over operands and print every step",
		Example: "  hofkit evaluate --ops +,*,+,/ 1 1 3 0 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := util.ParseFloats(args)
			if err != nil {
				return err
			}
			trace, err := c.svc.Evaluate(cmd.Context(), operands, arith.SplitList(ops))
			if !c.jsonOutput {
				for _, step := range trace.Steps {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %s(%v, %v) = %v\n", step.Index, step.Operation, step.Left, step.Right, step.Result)
				}
			}
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), trace, func(w io.Writer) {
				fmt.Fprintf(w, "result: %v\n", trace.Result)
			})
		},
	}
	cmd.Flags().StringVarP(&ops, "ops", "o", "", "comma-separated operations, one fewer than the operands")
	return cmd
}

func (c *cli) longestCmd() *cobra.Command {
	var mode, tie string
	cmd := &cobra.Command{
		Use:     "longest WORD...",
		Short:   "Pick the longest word (or shortest, greatest, least with --mode)",
		Example: "  hofkit longest --tie-break later Ok Way too",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.ParseMode(mode)
			if err != nil {
				return err
			}
			tb, err := c.svc.TieBreak(tie)
			if err != nil {
				return err
			}
			v, found, err := c.svc.SelectString(cmd.Context(), args, m, tb)
			if err != nil {
				return err
			}
			return c.printSelection(cmd.OutOrStdout(), v, found)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(app.ModeLongest), "longest, shortest, greatest or least")
	cmd.Flags().StringVar(&tie, "tie-break", "", "earlier or later (default from selection.tie_break)")
	return cmd
}

func (c *cli) selectCmd() *cobra.Command {
	var mode, tie string
	cmd := &cobra.Command{
		Use:     "select NUMBER...",
		Short:   "Pick the greatest or least number",
		Example: "  hofkit select --mode least 3 1 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := util.ParseFloats(args)
			if err != nil {
				return err
			}
			m, err := app.ParseMode(mode)
			if err != nil {
				return err
			}
			tb, err := c.svc.TieBreak(tie)
			if err != nil {
				return err
			}
			v, found, err := c.svc.Select(cmd.Context(), values, m, tb)
			if err != nil {
				return err
			}
			return c.printSelection(cmd.OutOrStdout(), v, found)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(app.ModeGreatest), "greatest or least")
	cmd.Flags().StringVar(&tie, "tie-break", "", "earlier or later (default from selection.tie_break)")
	return cmd
}

func (c *cli) printSelection(w io.Writer, v any, found bool) error {
	out := map[string]any{"found": found}
	if found {
		out["value"] = v
	}
	return c.print(w, out, func(w io.Writer) {
		if found {
			fmt.Fprintln(w, v)
		} else {
			fmt.Fprintln(w, "(none)")
		}
	})
}

func (c *cli) capitalizedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalized WORD...",
		Short: "Keep the words whose first letter is upper-case",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printLines(cmd.OutOrStdout(), c.svc.Capitalized(cmd.Context(), args))
		},
	}
}

func (c *cli) flattenCmd() *cobra.Command {
	var unsorted bool
	cmd := &cobra.Command{
		Use:     "flatten KEY=VALUE...",
		Short:   `Print one "key -> value" line per entry`,
		Example: "  hofkit flatten b=2 a=1",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := util.ParsePairs(args)
			if err != nil {
				return err
			}
			entries := make(map[string]any, len(pairs))
			for k, v := range pairs {
				entries[k] = v
			}
			return c.printLines(cmd.OutOrStdout(), c.svc.Flatten(cmd.Context(), entries, !unsorted))
		},
	}
	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "keep map iteration order instead of sorting by key")
	return cmd
}

func (c *cli) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations zip and evaluate accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printLines(cmd.OutOrStdout(), c.svc.Operations())
		},
	}
}

func (c *cli) printLines(w io.Writer, lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	return c.print(w, lines, func(w io.Writer) {
		if len(lines) > 0 {
			fmt.Fprintln(w, strings.Join(lines, "\n"))
		}
	})
}
