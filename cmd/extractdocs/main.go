// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.mojodoc.dev/tools/internal/atomicio"
	"go.mojodoc.dev/tools/internal/cli"
	"go.mojodoc.dev/tools/internal/cli/restrict"
	"go.mojodoc.dev/tools/internal/mojom"

	"github.com/landlock-lsm/go-landlock/landlock"
)

func main() { cli.Main(new(app)) }

type app struct {
	output string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.output, "o", "", "Write output to `file` instead of stdout.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: missing required argument 'input'", cli.ErrInvalidArgs)
	}
	input := env.Args[0]

	rules := []landlock.Rule{landlock.RODirs(filepath.Dir(input))}
	if a.output != "" {
		rules = append(rules, landlock.RWDirs(filepath.Dir(a.output)))
	}
	restrict.DoUnlessTesting(ctx, rules...)

	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	doc, err := mojom.Generate(input, src)
	if err != nil {
		return err
	}

	if a.output == "" {
		_, err := env.Stdout.Write(doc)
		return err
	}
	return atomicio.WriteFile(a.output, doc, 0o644)
}
