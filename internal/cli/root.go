package cli

import (
	"errors"
	"fmt"
	"io"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/logger"
	"minigrep/internal/source"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// EnvFileEnv задаёт .env файл, который читается после окружения процесса.
const EnvFileEnv = "MINIGREP_ENV_FILE"

const defaultEnvFile = ".env"

type options struct {
	lookup config.LookupFunc
	stdout io.Writer
}

// NewRootCommand создаёт команду minigrep QUERY FILENAME [MODE].
// Флаги не разбираются: любой аргумент, даже начинающийся с "-", остаётся позиционным.
func NewRootCommand(stdout, stderr io.Writer, lookup config.LookupFunc) *cobra.Command {
	if lookup == nil {
		lookup = config.OSLookup
	}
	opts := &options{lookup: lookup, stdout: stdout}

	cmd := &cobra.Command{
		Use:   "minigrep QUERY FILENAME [MODE]",
		Short: "Print lines of FILENAME that contain QUERY",
		Long: "Print every line of FILENAME that contains QUERY as a substring.\n" +
			"MODE starting with an uppercase I ignores case, any other MODE keeps it.\n" +
			"Without MODE, a set " + config.CaseInsensitiveEnv + " variable ignores case.\n" +
			"Settings come from $" + config.ConfigPathEnv + ", the dotenv file from $" + EnvFileEnv + ".",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *options) error {
	// первым элементом идёт имя программы, как в os.Args
	argv := append([]string{cmd.Name()}, args...)

	// позиционные аргументы проверяются до любого чтения с диска
	if _, err := config.Resolve(argv, opts.lookup); err != nil {
		return err
	}

	envFile := defaultEnvFile
	if v, ok := opts.lookup(EnvFileEnv); ok {
		envFile = v
	}
	lookup, err := config.DotenvLookup(opts.lookup, envFile)
	if err != nil {
		return err
	}

	// повторно, чтобы CASE_INSENSITIVE мог прийти из .env
	cfg, err := config.Resolve(argv, lookup)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings("", lookup)
	if err != nil {
		return err
	}

	var (
		svc *app.Service
		log *zap.Logger
	)
	container := fx.New(
		fx.NopLogger,
		fx.Supply(settings),
		fx.Provide(
			logger.ProvideLogger,
			source.NewFileReader,
			func(r *source.FileReader) app.SourceReader {
				return r
			},
			func() io.Writer {
				return opts.stdout
			},
			app.NewService,
		),
		fx.Populate(&svc, &log),
	)
	if err := container.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("configuration resolved",
		zap.String("query", cfg.Query),
		zap.String("file", cfg.Filename),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.String("env", settings.Env),
	)
	return svc.Run(cfg)
}

// Execute запускает команду и возвращает код завершения процесса.
func Execute(args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	if args == nil {
		// cobra подставляет os.Args, если аргументы не заданы
		args = []string{}
	}
	cmd := NewRootCommand(stdout, stderr, lookup)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "minigrep:", err)
	if errors.Is(err, config.ErrConfig) {
		fmt.Fprintln(stderr, "usage:", cmd.UseLine())
		return ExitConfigError
	}
	return ExitFailure
}
