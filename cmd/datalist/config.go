package main

import (
	"context"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datalist/adapter"
	nt "datalist/entity"
	"datalist/grid"
	"datalist/layout"
	"datalist/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the grid configuration derived from a layout",
	Long: `config prints the grid configuration and, when --data is given, the first
page of data as json, in the shape expected by web grid widgets.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printConfig(cmd.Context())
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample layout",
	Long:  `sample writes a layout file, with columns taken from --data when given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeSample(cmd.Context())
	},
}

type output struct {
	Mode   string      `json:"mode,omitempty"`
	Config grid.Config `json:"config"`
	Data   *grid.Data  `json:"data,omitempty"`
}

func printConfig(ctx context.Context) (err error) {

	lo, err := layout.Load(opts.layoutPath)
	if err != nil {
		return
	}

	lgr := newLogger(os.Stderr)
	defer lgr.Sync()

	adp := adapter.New(ctx, lgr)
	adp.SetMode(lo.Mode)
	adp.SetColumns(lo.Columns)
	adp.Flush()

	out := output{
		Mode:   adp.Mode(),
		Config: adp.Config(),
	}

	if opts.dataPath != "" {
		var records []nt.Record
		var total int
		records, total, err = firstPage(ctx, lgr, lo.Limit)
		if err != nil {
			return
		}

		adp.SetRecords(records)
		adp.SetLimit(lo.Limit)
		adp.SetPage(1)
		adp.SetTotal(total)
		adp.Flush()

		data := adp.Data()
		out.Data = &data
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal config")
		return
	}

	_, err = os.Stdout.Write(append(encoded, '\n'))
	return
}

func firstPage(ctx context.Context, lgr *logger.Logger, limit int) (records []nt.Record, total int, err error) {

	dk, err := openStore(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	records, total, err = dk.GetPage(ctx, limit, 1)
	return
}

func writeSample(ctx context.Context) (err error) {

	lo := layout.Default()

	if opts.dataPath != "" {
		lgr := newLogger(os.Stderr)
		defer lgr.Sync()

		dk, err := openStore(ctx, lgr)
		if err != nil {
			return err
		}
		defer dk.Close()

		lo.Columns = dk.Columns()
	}

	err = lo.Sample(opts.layoutPath, 0644)
	return
}
