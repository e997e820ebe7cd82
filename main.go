// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cybrota/happiness/bst"
)

var version = "dev"

type globalOptions struct {
	configPath string
	dataPath   string
	logLevel   string
	quiet      bool
}

// app is everything a command needs once startup is done.
type app struct {
	cfg *Config
	log zerolog.Logger
	idx *CountryIndex
}

// bootstrap loads settings, builds the logger and fills the index from the
// data file. A missing or unreadable data file is logged and the program
// continues with an empty tree.
func bootstrap(opts *globalOptions) (*app, error) {
	cfg, cfgErr := LoadConfig(opts.configPath)
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if opts.logLevel != "" {
		if _, err := parseLogLevel(opts.logLevel); err != nil {
			return nil, err
		}
		cfg.Log.Level = opts.logLevel
	}
	cfg.Quiet = opts.quiet

	InitializeColors()
	logger := newLogger(os.Stderr, cfg.Log.Level)
	if cfgErr != nil {
		warnDefaultSettings(os.Stderr, cfgErr)
	}

	idx := NewCountryIndex(cfg.Index, logger)
	if _, err := loadCountriesFile(cfg.Data.Path, idx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("starting with an empty tree")
	}
	return &app{cfg: cfg, log: logger, idx: idx}, nil
}

func withApp(opts *globalOptions, fn func(a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(opts)
		if err != nil {
			return err
		}
		return fn(a, args)
	}
}

// countArg reads an optional count argument, falling back to def.
func countArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad count %q", args[0])
	}
	return n, nil
}

func printRanking(a *app, direction string, args []string) error {
	count, err := countArg(args, a.cfg.Display.DefaultCount)
	if err != nil {
		return err
	}
	slots, title, err := rankWithTitle(a.idx, direction, count)
	if err != nil {
		return err
	}
	writeSlots(os.Stdout, title, slots, a.cfg.Display.Precision)
	return nil
}

func main() {
	banner := fmt.Sprintf("Happiness: countries and their happiness scores in a binary search tree [Version: %s%s%s]\n",
		Green, version, Reset)

	opts := &globalOptions{}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Numbered menu for inserting, deleting, searching and ranking countries",
		Long:  banner,
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(a *app, args []string) error {
			return runMenu(a.idx, os.Stdin, os.Stdout, a.cfg.Display.Precision)
		}),
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Command shell over the country tree (reads a script when stdin is not a terminal)",
		Long:  fmt.Sprintf("%s\n%s", banner, shellHelp),
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(a *app, args []string) error {
			interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			return runShell(a.idx, a.cfg, os.Stdin, os.Stdout, interactive)
		}),
	}

	var cmdExec = &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run shell commands given as arguments, one command per argument",
		Long:  fmt.Sprintf("%s\n%s", banner, shellHelp),
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			return runShell(a.idx, a.cfg, strings.NewReader(strings.Join(args, "\n")), os.Stdout, false)
		}),
	}

	var order string
	var cmdPrint = &cobra.Command{
		Use:   "print",
		Short: "Print every country in a traversal order",
		Long:  banner,
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(a *app, args []string) error {
			o, err := bst.ParseOrder(order)
			if err != nil {
				return err
			}
			writeRecords(os.Stdout, orderTitle(o), a.idx.Records(o), a.cfg.Display.Precision)
			return nil
		}),
	}
	cmdPrint.Flags().StringVar(&order, "order", "inorder", "inorder, preorder, postorder, legacy-postorder or reverse")

	var cmdFind = &cobra.Command{
		Use:   "find NAME",
		Short: "Show a country's happiness and its path from the root",
		Long:  banner,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			return printFind(os.Stdout, a.idx, args[0])
		}),
	}

	var cmdPath = &cobra.Command{
		Use:   "path NAME",
		Short: "Show the path from the root to a country",
		Long:  banner,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			return printPath(os.Stdout, a.idx, args[0])
		}),
	}

	var cmdTop = &cobra.Command{
		Use:   "top [N]",
		Short: "List the N happiest countries",
		Long:  banner,
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			return printRanking(a, rankTop, args)
		}),
	}

	var cmdBottom = &cobra.Command{
		Use:   "bottom [N]",
		Short: "List the N least happy countries",
		Long:  banner,
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			return printRanking(a, rankBottom, args)
		}),
	}

	var cmdShape = &cobra.Command{
		Use:   "shape",
		Short: "Draw the tree structure",
		Long:  banner,
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(a *app, args []string) error {
			fmt.Print(a.idx.Shape(a.cfg.Display.Precision))
			return nil
		}),
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Browse countries with prefix search",
		Long:  banner,
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(a *app, args []string) error {
			return runBrowser(a.idx, a.cfg)
		}),
	}

	var chartBottom bool
	var cmdChart = &cobra.Command{
		Use:   "chart [N]",
		Short: "Bar chart of the top (or bottom) N countries",
		Long:  banner,
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(a *app, args []string) error {
			count, err := countArg(args, a.cfg.Display.DefaultCount)
			if err != nil {
				return err
			}
			direction := rankTop
			if chartBottom {
				direction = rankBottom
			}
			return runChart(a.idx, direction, count, a.cfg.Display.Precision)
		}),
	}
	cmdChart.Flags().BoolVar(&chartBottom, "bottom", false, "chart the least happy countries")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Happiness usage guide",
		Long:  banner,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current settings, creating a default config file if needed",
		Long:  banner,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			InitializeColors()
			return displaySettings(os.Stdout, opts.configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Happiness version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "happiness",
		Version:      version,
		Long:         banner,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         cmdMenu.RunE, // default to the menu when no subcommand is provided
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/"+configFileName+")")
	flags.StringVar(&opts.dataPath, "data", "", "country CSV file, overrides data.path")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn, error or disabled")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "hide the loading spinner")

	rootCmd.AddCommand(cmdMenu, cmdShell, cmdExec, cmdPrint, cmdFind, cmdPath, cmdTop, cmdBottom,
		cmdShape, cmdTUI, cmdChart, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
