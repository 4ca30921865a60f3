// Package main provides awardcheck, an offline award-eligibility calculator.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/okian/awards/internal/app"
	"github.com/okian/awards/internal/domain/types"
	"github.com/okian/awards/pkg/logger"
)

var errNoInput = errors.New("--input is required")

type evalOptions struct {
	input        string
	program      string
	gradeSplit   bool
	sort         string
	grade        string
	query        string
	eligibleOnly bool
	asJSON       bool
}

func main() {
	if err := logger.InitWithWriter(os.Stderr, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = logger.SetLevelString("warn")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "awardcheck",
		Short:         "Compute award eligibility for a robotics event",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newProgramsCmd())
	return rootCmd
}

func newEvalCmd() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an event export",
		Long: "Evaluate reads a JSON document with roster, standings and skills arrays " +
			"(and optional program, grade_split and sort fields) and prints each team's verdict.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "event JSON file, or - for stdin")
	f.StringVarP(&opts.program, "program", "p", "", "program id or alias (overrides the file)")
	f.BoolVar(&opts.gradeSplit, "grade-split", false, "rank each grade separately (overrides the file)")
	f.StringVar(&opts.sort, "sort", "", "result order: default, team, grade, organization, region, eligibility, driver, programming")
	f.StringVar(&opts.grade, "grade", "", "only show teams of this grade")
	f.StringVarP(&opts.query, "query", "q", "", "only show teams whose number, name or organization contains this text")
	f.BoolVar(&opts.eligibleOnly, "eligible-only", false, "only show eligible teams")
	f.BoolVar(&opts.asJSON, "json", false, "print the evaluation as JSON")
	return cmd
}

func newProgramsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List supported programs and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := app.New()
			progs := svc.Programs(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), progs)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), renderPrograms(progs))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func runEval(cmd *cobra.Command, opts *evalOptions) error {
	req, err := readRequest(cmd, opts.input)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("program") {
		req.Program = opts.program
	}
	if f.Changed("grade-split") {
		req.GradeSplit = opts.gradeSplit
	}
	if f.Changed("sort") {
		req.Sort = opts.sort
	}
	if f.Changed("grade") {
		req.Grade = opts.grade
	}
	if f.Changed("query") {
		req.Query = opts.query
	}
	if f.Changed("eligible-only") {
		req.EligibleOnly = opts.eligibleOnly
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc := app.New()
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start evaluator: %w", err)
	}
	defer svc.Stop()

	ev, err := svc.Evaluate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to evaluate: %w", err)
	}

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), ev)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), renderEvaluation(ev))
	return err
}

func readRequest(cmd *cobra.Command, input string) (types.EvaluationRequest, error) {
	var req types.EvaluationRequest
	var r io.Reader
	switch strings.TrimSpace(input) {
	case "":
		return req, errNoInput
	case "-":
		r = cmd.InOrStdin()
	default:
		file, err := os.Open(input)
		if err != nil {
			return req, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = file.Close() }()
		r = file
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode input: %w", err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
