// Copyright 2025 Google LLC
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

// Utility kernelgen renders the sample kernels as C++ source files.
//
// For each kernel, kernelgen validates the tree, runs the identity
// visitor and mutator over it, and writes kernel_<name>.cc in the
// output folder:
//
//	kernelgen -kernels=gemm,demo -out_dir=/tmp/kernels
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	kfmt "github.com/gx-org/kernelgen/base/fmt"
	"github.com/gx-org/kernelgen/base/log"
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irinfo"
	"github.com/gx-org/kernelgen/build/ir/irmutate"
	"github.com/gx-org/kernelgen/build/ir/irprint"
	"github.com/gx-org/kernelgen/build/ir/irvalidate"
	"github.com/gx-org/kernelgen/examples/kernels"
	"github.com/gx-org/kernelgen/tools/flags"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

var (
	kernelNames = flags.StringList("kernels", "comma separated list of kernels to generate (default: all)")
	outDir      = flag.String("out_dir", ".", "folder in which the source files are written")
	logLevel    = flag.String("log_level", "warn", "log level: debug, info, warn, or error")
	logFormat   = flag.String("log_format", log.FormatText, "log format: text or json")
	validate    = flag.Bool("validate", true, "validate the kernels before rendering them")
	printSrc    = flag.Bool("print", false, "print the generated source with line numbers on stdout")
)

// message formats an error message for the terminal.
// Lines after the first are indented.
func message(format string, a ...any) string {
	return kfmt.IndentSkip(1, "\t", fmt.Sprintf(format, a...))
}

func exit(format string, a ...any) {
	fmt.Fprintln(os.Stderr, message(format, a...))
	os.Exit(1)
}

type generator struct {
	logger   *slog.Logger
	outDir   string
	validate bool
	// out receives the numbered source of each kernel if not nil.
	out io.Writer
}

// filename returns the name of the file in which a kernel is written.
func filename(name string) string {
	return "kernel_" + name + ".cc"
}

func (g *generator) generate(name string, build func() *ir.Kernel) (string, error) {
	logger := g.logger.With("kernel", name)
	k := build()
	if g.validate {
		if err := irvalidate.Validate(k); err != nil {
			return "", err
		}
	}
	count := irinfo.Count(k)
	for _, kind := range irinfo.Kinds(count) {
		logger.Debug("visited kernel", "kind", kind, "nodes", count[kind])
	}
	indices := irinfo.Indices(k)
	names := make([]string, len(indices))
	for i, index := range indices {
		names[i] = index.Name()
	}
	logger.Debug("kernel symbols", "indices", names, "vars", irinfo.Vars(k))
	for _, param := range irinfo.Params(k) {
		logger.Info("parameter", "param", param.String(), "size", kfmt.Bytes(param.Bytes()))
	}
	k, err := irmutate.Kernel(irmutate.Identity, k)
	if err != nil {
		return "", err
	}
	src, err := irprint.Kernel(k, irprint.WithLogger(logger))
	if err != nil {
		return "", err
	}
	path := filepath.Join(g.outDir, filename(name))
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return "", errors.Wrapf(err, "cannot write kernel %s", name)
	}
	logger.Info("kernel written", "path", path, "footprint", kfmt.Bytes(irinfo.Footprint(k)))
	if g.out != nil {
		fmt.Fprintf(g.out, "// %s\n%s\n", path, kfmt.Number(src))
	}
	return path, nil
}

// run generates the kernels in order and stops at the first error.
func (g *generator) run(names []string) ([]string, error) {
	if len(names) == 0 {
		names = maps.Keys(kernels.All)
		slices.Sort(names)
	}
	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "cannot create output folder %s", g.outDir)
	}
	var paths []string
	for _, name := range names {
		build, ok := kernels.All[name]
		if !ok {
			available := maps.Keys(kernels.All)
			slices.Sort(available)
			return paths, errors.Errorf("unknown kernel %q. Available kernels are %v", name, available)
		}
		path, err := g.generate(name, build)
		if err != nil {
			return paths, errors.WithMessagef(err, "kernel %s", name)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func main() {
	flag.Parse()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		exit("%v", err)
	}
	cfg := log.DefaultConfig()
	cfg.Level = level
	cfg.Format = *logFormat
	logger, err := log.Init(cfg)
	if err != nil {
		exit("%v", err)
	}
	g := &generator{
		logger:   logger,
		outDir:   *outDir,
		validate: *validate,
	}
	if *printSrc {
		g.out = os.Stdout
	}
	if _, err := g.run(*kernelNames); err != nil {
		exit("%+v", err)
	}
}
