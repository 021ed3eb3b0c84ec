// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.astrophena.name/appicon/internal/icon"
	"go.astrophena.name/appicon/internal/logger"
	"go.astrophena.name/appicon/internal/sizetable"
	"go.astrophena.name/appicon/internal/watch"

	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

var errWatchOverwritesInput = errors.New("can't watch a master icon that is overwritten by one of the generated icons")

type app struct {
	filter icon.Filter
	sizes  string
	watch  bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.Func("filter", "Resampling `filter`: "+strings.Join(icon.FilterNames(), ", ")+".", func(s string) error {
		f, err := icon.ParseFilter(s)
		if err != nil {
			return err
		}
		a.filter = f
		return nil
	})
	fs.StringVar(&a.sizes, "sizes", "", "Load the size table from Starlark `file` instead of using the iOS one.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons each time the master icon changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	return a.run(ctx, env.Args, env.Stdout)
}

func (a *app) run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintln(stdout, "Usage: resize-icons <master_icon_path>")
		return fmt.Errorf("%w: want master icon path", cli.ErrInvalidArgs)
	}

	input, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to get absolute path for input file: %w", err)
	}

	table := icon.IOS
	if a.sizes != "" {
		table, err = sizetable.Load(a.sizes)
		if err != nil {
			return err
		}
	}

	logf := logger.Writer(stdout)
	c := &icon.Config{
		Input:  input,
		Dir:    filepath.Dir(input),
		Table:  table,
		Filter: a.filter,
		Logf:   logf,
	}

	// Each run would rewrite the master and trigger the next one.
	if a.watch {
		for _, e := range table {
			if filepath.Join(c.Dir, e.Name) == input {
				return fmt.Errorf("%w: %s (rename it or pass -sizes)", errWatchOverwritesInput, input)
			}
		}
	}

	logf("Resizing icon: %s", c.Input)
	logf("Output directory: %s", c.Dir)
	logf("")

	resize := func() error {
		if err := icon.Resize(c); err != nil {
			logf("✗ Error: %v", err)
			return err
		}
		return nil
	}
	if !a.watch {
		return resize()
	}
	return watch.Watch(ctx, input, resize)
}
