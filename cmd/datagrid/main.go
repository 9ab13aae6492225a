package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datagrid"
	nt "datagrid/entity"
	"datagrid/store/duck"
	"datagrid/store/lite"
	"datagrid/util"
)

const logMode = 0644

type source interface {
	datagrid.Store
	Close()
}

func main() {
	var cfg datagrid.Config
	var data string
	var logPath string
	var force bool

	rootCmd := &cobra.Command{
		Use:   "datagrid",
		Short: "Browse a json, csv, parquet or sqlite file in a resizable, reorderable grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, data, logPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&data, "data", "d", "", "file of rows to load, db.sqlite#table for sqlite",
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Layout, "layout", "c", "layout.yaml", "column layout, yaml or toml",
	)
	rootCmd.PersistentFlags().StringVarP(
		&logPath, "log", "l", "", "append logs to this file",
	)
	rootCmd.Flags().IntVarP(
		&cfg.Limit, "rows", "n", 10000, "most rows to read, 0 for all",
	)
	rootCmd.MarkPersistentFlagRequired("data")

	cmdLayout := &cobra.Command{
		Use:   "layout",
		Short: "Write a layout derived from the data's fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLayout(cfg.Layout, data, force)
		},
	}
	cmdLayout.Flags().BoolVarP(
		&force, "force", "f", false, "overwrite an existing layout",
	)
	rootCmd.AddCommand(cmdLayout)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg datagrid.Config, data, logPath string) (err error) {

	ctx := context.Background()

	file, err := util.OpenLog(logPath, logMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err)
	}
	defer util.CloseLog(file)

	lgr := &sabot.Sabot{Writer: file}

	src, err := openSource(data, lgr)
	if err != nil {
		return
	}
	defer src.Close()

	model, err := cfg.NewModel(ctx, src, lgr)
	if err != nil {
		return
	}
	defer model.Close()

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "program failed", err)
		err = errors.Wrapf(err, "failed to run")
	}
	return
}

func writeLayout(path, data string, force bool) (err error) {

	src, err := openSource(data, &sabot.Sabot{Writer: os.Stderr})
	if err != nil {
		return
	}
	defer src.Close()

	fields, err := src.Fields()
	if err != nil {
		return
	}

	layout := datagrid.Layout{Columns: datagrid.ColumnsFor(fields)}
	err = util.WriteConfig(layout, path, force)
	if err != nil {
		return
	}

	fmt.Printf("wrote %d columns to %s\n", len(layout.Columns), path)
	return
}

// openSource loads data with sqlite for database files and duckdb otherwise.
func openSource(data string, lgr nt.Logger) (src source, err error) {

	file, _, _ := strings.Cut(data, "#")
	switch strings.ToLower(filepath.Ext(file)) {
	case ".db", ".sqlite", ".sqlite3":
		src = lite.New(lgr)
	default:
		src, err = duck.New(lgr)
		if err != nil {
			return
		}
	}

	err = src.Load(data)
	if err != nil {
		src.Close()
		src = nil
	}
	return
}
