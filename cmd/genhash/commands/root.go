package commands

import (
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gtank/generichash/blake2b"
	"github.com/gtank/generichash/internal/profile"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	configPath string
	size       int
	keyHex     string
	keyFile    string
	saltHex    string
	personal   string
	jobs       int
	verbose    bool

	log *zap.SugaredLogger
}

// Execute runs the genhash command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:          "genhash",
		Short:        "BLAKE2b keyed hashing with salt and personalization",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.log = newLogger(cmd.ErrOrStderr(), o.verbose).Sugar()

			if o.jobs < 1 {
				return errors.Errorf("--jobs must be at least 1, got %d", o.jobs)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				o.log.Sync() //nolint:errcheck
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML profile with hashing parameters")
	f.IntVarP(&o.size, "size", "s", 0, "digest size in bytes (default 64)")
	f.StringVarP(&o.keyHex, "key", "k", "", "hex encoded key for keyed mode")
	f.StringVar(&o.keyFile, "key-file", "", "file holding a hex encoded key")
	f.StringVar(&o.saltHex, "salt", "", "hex encoded salt, zero-padded to 16 bytes")
	f.StringVarP(&o.personal, "personal", "p", "", "personalization string, zero-padded to 16 bytes")
	f.IntVarP(&o.jobs, "jobs", "j", runtime.NumCPU(), "number of inputs hashed in parallel")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(sumCmd(o), checkCmd(o), keygenCmd(o))

	return root
}

// newLogger writes human readable log lines to w, which is the command's
// error stream.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core, zap.Development())
}

// config merges the profile with flags set on the command line.
func (o *options) config(cmd *cobra.Command) (blake2b.Config, error) {
	p := &profile.Profile{}

	if o.configPath != "" {
		var err error

		if p, err = profile.Load(o.configPath); err != nil {
			return blake2b.Config{}, err
		}

		o.log.Debugw("loaded profile", "path", o.configPath)
	}

	flags := cmd.Flags()

	if flags.Changed("size") {
		p.DigestSize = o.size
	}

	if flags.Changed("key") || flags.Changed("key-file") {
		p.Key, p.KeyFile = o.keyHex, o.keyFile
	}

	if flags.Changed("salt") {
		p.Salt = o.saltHex
	}

	if flags.Changed("personal") {
		p.Personal = o.personal
	}

	return p.Config()
}

// hasher builds the validated hasher for this invocation.
func (o *options) hasher(cmd *cobra.Command) (*blake2b.Hasher, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return nil, err
	}

	h, err := blake2b.New(cfg)
	if err != nil {
		return nil, err
	}

	o.log.Debugw("hasher ready", "size", h.Size(), "keyed", h.Keyed())

	return h, nil
}
