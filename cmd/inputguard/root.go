package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/logger"
	"github.com/dmitrymomot/inputguard/pkg/requestid"
)

// errRejected is returned when at least one checked text is invalid.
var errRejected = errors.New("input rejected")

// cli carries what every subcommand needs.
type cli struct {
	app    config.App
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	// Env errors surface in PersistentPreRunE; defaults keep the flags usable.
	envErr := config.Load(&c.app)
	if envErr != nil {
		c.app = config.App{LogLevel: "info", LogFormat: "text", Profiles: "inputguard.yaml"}
	}

	root := &cobra.Command{
		Use:   "inputguard",
		Short: "Validate text input against typed field rules",
		Long: `inputguard decides whether a text is acceptable for a typed input field:
integers, decimals with a locale separator, percentages, strings, e-mail
addresses, URLs or a custom pattern, each with optional limits.

Fields are configured with flags, INPUTGUARD_FIELD_* variables or a YAML
profiles file, and can be served over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			log, err := c.app.Logger(c.stderr, logger.WithContextExtractors(requestid.LoggerExtractor()))
			if err != nil {
				return err
			}
			c.log = log
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.app.LogLevel, "log-level", c.app.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&c.app.LogFormat, "log-format", c.app.LogFormat, "log format: text or json")
	flags.StringVar(&c.app.Profiles, "profiles", c.app.Profiles, "YAML profiles file")

	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newFieldsCmd(c))
	root.AddCommand(newServeCmd(c))
	return root
}

func (c *cli) loadProfiles() (*config.Profiles, error) {
	return config.LoadProfilesFile(c.app.Profiles)
}
