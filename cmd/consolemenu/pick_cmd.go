package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/consolemenu/internal/cmd"
	"github.com/raphi011/consolemenu/internal/config"
	"github.com/raphi011/consolemenu/internal/filter"
	"github.com/raphi011/consolemenu/internal/log"
	"github.com/raphi011/consolemenu/internal/menu"
	"github.com/raphi011/consolemenu/internal/output"
)

type pickFlags struct {
	optionsFile string
	header      string
	separator   string
	filter      string
	raw         bool
	noCancel    bool
	noDispatch  bool
	copy        bool
}

// apply overrides cfg with the flags that were given.
func (f pickFlags) apply(cfg config.Config) config.Config {
	if f.header != "" {
		cfg.Header = f.header
	}
	if f.separator != "" {
		cfg.Separator = f.separator
	}
	if f.raw {
		cfg.RawLabels = true
	}
	if f.noCancel {
		cfg.Cancel = false
	}
	if f.noDispatch {
		cfg.Dispatch = false
	}
	return cfg
}

func newPickCmd() *cobra.Command {
	var flags pickFlags

	c := &cobra.Command{
		Use:   "pick",
		Short: "Show a menu and print the chosen option",
		Args:  cobra.NoArgs,
		Long: `Show a numbered menu and print the chosen option's label.

Options come from a TOML options file (--options) or, without one, from a
built-in list of smartphones. An option's "run" command is executed after it
is picked unless --no-dispatch is given.

Enter the option's number to pick it, or "x" to leave without a selection.
Anything else prints "No valid selection! Please try again:" and shows the
menu again.`,
		Example: `  consolemenu pick                           # built-in smartphone menu
  consolemenu pick --options phones.toml     # menu from an options file
  consolemenu pick --filter galaxy           # only options matching "galaxy"
  consolemenu pick --header "Pick one:" --separator ")"
  consolemenu pick --raw --copy              # keep underscores, copy to clipboard`,
		RunE: func(c *cobra.Command, args []string) error {
			return runPick(c.Context(), c.InOrStdin(), c.ErrOrStderr(), flags)
		},
	}

	c.Flags().StringVarP(&flags.optionsFile, "options", "o", "", "TOML file defining the menu options")
	c.Flags().StringVar(&flags.header, "header", "", "Line printed above the options")
	c.Flags().StringVar(&flags.separator, "separator", "", "Text between number and label")
	c.Flags().StringVarP(&flags.filter, "filter", "f", "", "Only show options fuzzy-matching this query")
	c.Flags().BoolVar(&flags.raw, "raw", false, "Print labels verbatim (keep word separators)")
	c.Flags().BoolVar(&flags.noCancel, "no-cancel", false, "Do not offer \"X - Exit\"")
	c.Flags().BoolVar(&flags.noDispatch, "no-dispatch", false, "Do not run the picked option's command")
	c.Flags().BoolVar(&flags.copy, "copy", false, "Copy the picked label to the clipboard")

	return c
}

// runPick shows the menu on menuOut, reading from in, and prints the result
// through the context's output printer.
func runPick(ctx context.Context, in io.Reader, menuOut io.Writer, flags pickFlags) error {
	cfg := config.FromContext(ctx)

	if flags.optionsFile == "" {
		return pick(ctx, in, menuOut, menu.FromStringers(allPhones...), nil, flags.apply(cfg), flags)
	}

	f, err := config.LoadOptions(flags.optionsFile)
	if err != nil {
		return err
	}
	return pick(ctx, in, menuOut, f.MenuOptions(), f.Actions(), flags.apply(f.Merge(cfg)), flags)
}

func pick[K menu.Key](ctx context.Context, in io.Reader, menuOut io.Writer, options []menu.Option[K], actions map[K]string, cfg config.Config, flags pickFlags) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if flags.filter != "" {
		wordSeparator := cfg.WordSeparatorRune()
		if cfg.RawLabels {
			wordSeparator = 0
		}
		options = filter.Options(options, flags.filter, wordSeparator)
		if len(options) == 0 {
			return fmt.Errorf("no options match %q", flags.filter)
		}
		l.Debugf("filter %q kept %d options\n", flags.filter, len(options))
	}

	m, err := menu.New(menuOut, in, options)
	if err != nil {
		return err
	}
	config.Apply(cfg, m)

	var actionErr error
	for key, command := range actions {
		if err := m.RegisterAction(key, func() {
			actionErr = cmd.Shell(ctx, command, out.Writer(), l.Writer())
		}); err != nil {
			return err
		}
	}

	pretty := !cfg.RawLabels
	sel, err := m.Show(ctx, pretty)
	if err != nil {
		return err
	}

	key, ok := sel.Key()
	if !ok {
		l.Println("No selection")
		return nil
	}
	label, _ := m.Label(key, pretty)

	if flags.copy {
		if err := clipboard.WriteAll(label); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	out.Selection(label)

	if actionErr != nil {
		return fmt.Errorf("action for %q failed: %w", label, actionErr)
	}
	return nil
}
