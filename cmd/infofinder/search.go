package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/infofinder-backend/internal/app"
	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/render"
	lookupsvc "github.com/heartmarshall/infofinder-backend/internal/service/lookup"
)

type searchOptions struct {
	*rootOptions
	chain   bool
	json    bool
	noColor bool
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "search <category> <value>",
		Short: "Look up one identifier",
		Example: `  infofinder search mobile 9876543210 --chain
  infofinder search ifsc SBIN0001234 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&opts.chain, "chain", false, "follow the discovered Aadhaar id with a second lookup")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored JSON output")
	return cmd
}

type searchOutput struct {
	Result *domain.Presentation `json:"result"`
	Pin    *render.Pin          `json:"pin,omitempty"`
	// ChainError is set when --chain was requested and the second lookup failed.
	ChainError string `json:"chainError,omitempty"`
}

func runSearch(cmd *cobra.Command, opts *searchOptions, category, value string) error {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return err
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLoggerTo(os.Stderr, cfg.Log)
	lk := app.NewLookup(cfg.Lookup, nil, logger)

	sess := domain.NewSession(uuid.NewString())
	ctx := cmd.Context()

	p, err := lk.Service.Search(ctx, sess, c, value)
	if err != nil {
		return userError(err)
	}

	out := searchOutput{Result: p}
	if opts.chain {
		chained, _, err := lk.Service.FetchChained(ctx, sess)
		switch {
		case err == nil:
			out.Result = chained
		case errors.Is(err, lookupsvc.ErrNoChainedID):
			out.ChainError = domain.NoChainedIDMessage
		default:
			out.ChainError = chainedMessage(err)
			logger.Debug("chained lookup failed", slog.String("error", err.Error()))
		}
	}
	if out.Result.LocationHint != nil {
		pin := render.PinFor(*out.Result.LocationHint, nil)
		out.Pin = &pin
	}

	if opts.json {
		data, err := render.JSON(out, !opts.noColor)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, render.Presentation(out.Result))
	if out.ChainError != "" {
		fmt.Fprintln(w, render.Error(out.ChainError))
	}
	if out.Pin != nil {
		fmt.Fprintln(w, out.Pin.String())
	}
	return nil
}

// userError maps a search failure to the message a user sees.
func userError(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return errors.New(ve.UserMessage())
	}
	var le *domain.LookupError
	if errors.As(err, &le) {
		return errors.New(le.UserMessage())
	}
	return err
}

func chainedMessage(err error) string {
	var le *domain.LookupError
	if errors.As(err, &le) {
		return le.ChainedMessage()
	}
	return err.Error()
}
