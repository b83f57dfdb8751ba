package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"regexnfa/regexlib"
)

// Exit statuses, grep style.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// SubCommand pairs a cobra command with its own viper instance.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// exitError carries a non-zero status out of RunE. A nil err means nothing
// needs printing.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

type app struct {
	log *zap.Logger
}

// options turns a subcommand's configuration into builder options.
func (a *app) options(conf *viper.Viper) []regexlib.Option {
	opts := []regexlib.Option{regexlib.WithLogger(a.log)}
	if conf.GetBool("accept_walk") {
		opts = append(opts, regexlib.WithAcceptWalk())
	}
	return opts
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log_level %q", level)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// NewRootCmd assembles the regexnfa command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	rootConf := viper.New()

	root := &cobra.Command{
		Use:   "regexnfa",
		Short: "Compile small regular expressions to Thompson NFAs and match whole strings",
		Long: `
regexnfa compiles patterns made of letters, concatenation, alternation (|),
grouping and the postfix operators *, + and ? into a non-deterministic finite
automaton, and decides whether an input string is accepted as a whole.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	root.PersistentFlags().String("log_level", "warn",
		"Log level, one of [debug, info, warn, error].")
	root.PersistentFlags().Bool("accept_walk", false,
		"Find fragment accept states by walking forward from the fragment start "+
			"instead of tracking them explicitly.")
	_ = rootConf.BindPFlags(root.PersistentFlags())

	subcommands := []*SubCommand{
		matchCmd(a), tokensCmd(), astCmd(), dotCmd(a), runCmd(a),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		_ = sc.Conf.BindPFlags(sc.Cmd.Flags())
		_ = sc.Conf.BindPFlags(root.PersistentFlags())
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		rootConf.SetEnvPrefix("REGEXNFA")
		rootConf.AutomaticEnv()
		if cfg := rootConf.GetString("config"); cfg != "" {
			for _, sc := range subcommands {
				sc.Conf.SetConfigFile(cfg)
				if err := sc.Conf.ReadInConfig(); err != nil {
					return errors.Wrap(err, "reading config")
				}
			}
			rootConf.SetConfigFile(cfg)
			if err := rootConf.ReadInConfig(); err != nil {
				return errors.Wrap(err, "reading config")
			}
		}
		log, err := newLogger(rootConf.GetString("log_level"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.log = log
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = a.log.Sync()
	}
	return root
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return ExitMatch
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(os.Stderr, "error:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return ExitError
}
