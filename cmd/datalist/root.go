package main

import (
	"context"
	"io"

	tea "charm.land/bubbletea/v2"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datalist"
	"datalist/logger"
	"datalist/store/duck"
)

type options struct {
	layoutPath string
	dataPath   string
	logPath    string
	verbose    bool
}

var opts = options{}

var rootCmd = &cobra.Command{
	Use:          "datalist",
	Short:        "Browse records through a column layout",
	Long:         `datalist pages newline delimited json records in a terminal grid configured by a yaml column layout.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTui(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.layoutPath, "layout", "l", "layout.yaml", "column layout file")
	flags.StringVarP(&opts.dataPath, "data", "d", "", "newline delimited json records")
	flags.StringVar(&opts.logPath, "log", "datalist.log", "log file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(configCmd, sampleCmd)
}

func runTui(ctx context.Context) (err error) {

	if opts.dataPath == "" {
		return errors.New("--data is required")
	}

	file := logger.OpenLog(opts.logPath, 0644)
	defer logger.CloseLog(file)

	lgr := newLogger(file)
	defer lgr.Sync()

	ctx = lgr.WithValues(ctx, "layout", opts.layoutPath)

	dk, err := openStore(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	app, err := datalist.NewApp(ctx, dk, opts.layoutPath, lgr)
	if err != nil {
		return
	}

	_, err = tea.NewProgram(app).Run()
	err = errors.Wrapf(err, "failed to run tui")
	return
}

func newLogger(w io.Writer) *logger.Logger {

	level := logger.InfoLevel
	if opts.verbose {
		level = logger.DebugLevel
	}
	return logger.New(w, level)
}

func openStore(ctx context.Context, lgr *logger.Logger) (dk *duck.Duck, err error) {

	dk, err = duck.New(lgr)
	if err != nil {
		return
	}

	err = dk.Load(ctx, opts.dataPath)
	if err != nil {
		dk.Close()
	}
	return
}
