package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/logger"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

type checkOptions struct {
	field   string
	f       config.Field
	strict  bool
	verbose bool
}

func newCheckCmd(c *cli) *cobra.Command {
	opts := checkOptions{f: config.DefaultField()}

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Check texts against a field",
		Long: `Check evaluates each text, reformats valid decimals and prints the verdict.
Without arguments texts are read from stdin, one per line.

The field comes from --field (a profile in the profiles file) or from
INPUTGUARD_FIELD_* variables overridden by flags.

Exit status is 1 when any text is invalid.`,
		Example: `  inputguard check --classification decimal --separator , --digits 2 "12,345"
  printf '42\n-7\nabc\n' | inputguard check --classification integer --min 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(c, cmd)
			if err != nil {
				return err
			}
			return runCheck(c, engine, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.field, "field", "", "profile name from the profiles file")
	flags.StringVarP(&opts.f.Classification, "classification", "c", opts.f.Classification,
		"custom, integer, decimal, decimal_restrictive, percent, string, email or url")
	flags.StringVar(&opts.f.Separator, "separator", "", "decimal separator (default from --locale or the environment)")
	flags.StringVar(&opts.f.Locale, "locale", "", "locale providing the decimal separator, e.g. de_DE")
	flags.Float64Var(&opts.f.MinNumber, "min", math.NaN(), "minimum number")
	flags.Float64Var(&opts.f.MaxNumber, "max", math.NaN(), "maximum number")
	flags.IntVar(&opts.f.MinLength, "min-length", validator.Unlimited, "minimum string length, -1 for none")
	flags.IntVar(&opts.f.MaxLength, "max-length", validator.Unlimited, "maximum string length, -1 for none")
	flags.IntVar(&opts.f.MaxDecimalDigits, "digits", validator.Unlimited, "maximum decimal digits kept, -1 to disable")
	flags.BoolVar(&opts.f.EmptyIsValid, "empty-valid", false, "accept empty text")
	flags.StringVar(&opts.f.CustomPattern, "pattern", "", "regular expression for the custom classification")
	flags.StringVar(&opts.f.Expression, "expression", "", "additional boolean expression, e.g. \"number(text) != 13\"")
	flags.StringVar(&opts.f.PhoneRegion, "phone-region", "", "require a valid phone number for this region")
	flags.BoolVar(&opts.strict, "strict", false, "panic on internal parser mismatches")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print the field configuration first")
	cmd.MarkFlagsMutuallyExclusive("field", "classification")

	return cmd
}

// engine builds the engine from the selected profile or from environment
// values overridden by the flags that were set.
func (o *checkOptions) engine(c *cli, cmd *cobra.Command) (*validator.Engine, error) {
	var extra []validator.Option
	extra = append(extra, validator.WithLogger(c.log))
	if o.strict {
		extra = append(extra, validator.WithStrictParsing())
	}

	var f config.Field
	if o.field != "" {
		profiles, err := c.loadProfiles()
		if err != nil {
			return nil, err
		}
		if f, err = profiles.Get(o.field); err != nil {
			return nil, err
		}
	} else {
		env, err := config.LoadField()
		if err != nil {
			return nil, err
		}
		f = mergeFlags(env, o.f, cmd)
	}

	if o.verbose {
		fmt.Fprintln(c.stdout, color.New(color.Faint).Sprint(f.String()))
	}
	c.log.Debug("field configured", slog.Any("config", f))
	return f.Engine(extra...)
}

// mergeFlags overrides env with the flags the user set explicitly.
func mergeFlags(env, flags config.Field, cmd *cobra.Command) config.Field {
	set := cmd.Flags().Changed
	if set("classification") {
		env.Classification = flags.Classification
	}
	if set("separator") {
		env.Separator = flags.Separator
	}
	if set("locale") {
		env.Locale = flags.Locale
	}
	if set("min") {
		env.MinNumber = flags.MinNumber
	}
	if set("max") {
		env.MaxNumber = flags.MaxNumber
	}
	if set("min-length") {
		env.MinLength = flags.MinLength
	}
	if set("max-length") {
		env.MaxLength = flags.MaxLength
	}
	if set("digits") {
		env.MaxDecimalDigits = flags.MaxDecimalDigits
	}
	if set("empty-valid") {
		env.EmptyIsValid = flags.EmptyIsValid
	}
	if set("pattern") {
		env.CustomPattern = flags.CustomPattern
	}
	if set("expression") {
		env.Expression = flags.Expression
	}
	if set("phone-region") {
		env.PhoneRegion = flags.PhoneRegion
	}
	return env
}

func runCheck(c *cli, engine *validator.Engine, args []string) error {
	rejected := 0
	check := func(text string) {
		res, err := engine.Process(text)
		if err != nil {
			printVerdict(c, false, text, "")
			fmt.Fprintf(c.stdout, "  %s\n", color.YellowString(err.Error()))
			rejected++
			return
		}
		formatted := ""
		if res.Reformatted {
			formatted = res.Text
		}
		printVerdict(c, res.Valid, text, formatted)
		if !res.Valid {
			rejected++
		}
		c.log.Debug("text checked", logger.Verdict(res.Valid), logger.Text(text))
	}

	if len(args) > 0 {
		for _, text := range args {
			check(text)
		}
	} else {
		scanner := bufio.NewScanner(c.stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			check(strings.TrimRight(scanner.Text(), "\r"))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d invalid", errRejected, rejected)
	}
	return nil
}

// printVerdict prints a colored status symbol, the input and the
// reformatted text when it differs.
func printVerdict(c *cli, valid bool, text, formatted string) {
	symbol := color.New(color.FgGreen).Sprint("✓")
	if !valid {
		symbol = color.New(color.FgRed).Sprint("✗")
	}
	line := fmt.Sprintf("%s %q", symbol, text)
	if formatted != "" {
		line += fmt.Sprintf(" → %q", formatted)
	}
	fmt.Fprintln(c.stdout, line)
}
