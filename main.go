// Command ggraph loads numeric tables and opens an interactive graph.
package main

import (
	"fmt"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ggraph/internal/app"
	"ggraph/internal/dataset"
	"ggraph/internal/series"
	"ggraph/internal/version"
	"ggraph/ui/mainwindow"
	"ggraph/ui/prefs"
)

type options struct {
	xColumn  string
	yColumns []string
	noJitter bool
	logScale string
	saveDir  string
	watch    bool
	verbose  bool
}

func main() {
	opts := &options{}
	root := &cobra.Command{
		Use:     "ggraph [data files...]",
		Short:   "Interactive graphs of tabular data",
		Long:    "ggraph plots columns of whitespace or tab separated numeric tables\nin an interactive window with zooming, scrolling and selection.",
		Args:    cobra.MinimumNArgs(1),
		Version: version.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}
	root.Flags().StringVarP(&opts.xColumn, "x", "x", "1",
		"x column, by name or one-based position")
	root.Flags().StringSliceVarP(&opts.yColumns, "y", "y", nil,
		"y columns, by name or one-based position (default: all others)")
	root.Flags().BoolVar(&opts.noJitter, "no-jitter", false,
		"do not jitter integer columns")
	root.Flags().StringVar(&opts.logScale, "log", "",
		"start with logarithmic axes: x, y or xy")
	root.Flags().StringVar(&opts.saveDir, "save-dir", "",
		"directory for saved images (default: preferences, then cwd)")
	root.Flags().BoolVar(&opts.watch, "watch", false,
		"reload when an input file changes")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, paths []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ggraph",
	})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	state := app.NewState()
	set, err := loadAll(opts, paths, logger)
	if err != nil {
		return err
	}
	state.Set = set
	for _, p := range paths {
		state.AddInput(p)
	}

	switch opts.logScale {
	case "":
	case "x":
		set.SetScale(series.ScaleLogX)
	case "y":
		set.SetScale(series.ScaleLogY)
	case "xy", "yx":
		set.SetScale(series.ScaleLogLog)
	default:
		return fmt.Errorf("bad --log value %q: want x, y or xy", opts.logScale)
	}

	p := prefs.Load()
	if opts.saveDir != "" {
		p.SetString(prefs.KeySaveDir, opts.saveDir)
	}

	fapp := fyneapp.NewWithID("com.mumdex.ggraph")
	fapp.Settings().SetTheme(&app.GraphTheme{})

	mw, err := mainwindow.New(fapp, state, p, logger)
	if err != nil {
		return err
	}

	if opts.watch {
		watcher := app.NewFileWatcher(paths, 2*time.Second)
		watcher.OnChange(func(path string) {
			logger.Info("input changed, reloading", "path", path)
			fresh, err := loadAll(opts, paths, logger)
			if err != nil {
				logger.Error("reload", "err", err)
				return
			}
			fresh.SetScale(state.Set.Scale())
			mw.ReplaceData(fresh)
		})
		watcher.Start()
		defer watcher.Stop()
	}

	logger.Debug("showing window", "series", set.Len())
	mw.ShowAndRun()
	return nil
}

// loadAll merges the selected columns of every input file into one
// series set. With several files, series are prefixed with the file
// name so their toggles can be told apart.
func loadAll(opts *options, paths []string, logger *log.Logger) (*series.Set, error) {
	merged := series.NewSet()
	for _, path := range paths {
		table, err := dataset.Load(path)
		if err != nil {
			return nil, err
		}
		xCol := table.Find(opts.xColumn)
		if xCol < 0 {
			return nil, fmt.Errorf("%s: no column %q", path, opts.xColumn)
		}

		var yCols []int
		if len(opts.yColumns) == 0 {
			for i := range table.Columns {
				if i != xCol {
					yCols = append(yCols, i)
				}
			}
		} else {
			for _, name := range opts.yColumns {
				yi := table.Find(name)
				if yi < 0 {
					return nil, fmt.Errorf("%s: no column %q", path, name)
				}
				yCols = append(yCols, yi)
			}
		}

		set, err := table.Series(xCol, yCols, !opts.noJitter)
		if err != nil {
			return nil, err
		}
		for i := 0; i < set.Len(); i++ {
			s := set.At(i)
			if len(paths) > 1 {
				s.Name = fmt.Sprintf("%s:%s", path, s.Name)
			}
			if err := merged.Add(s); err != nil {
				return nil, err
			}
		}
		logger.Debug("loaded table", "path", path, "columns", len(table.Columns))
	}
	return merged, nil
}
