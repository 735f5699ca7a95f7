// Copyright 2026 The Dhall-Go Authors
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

// Command dhall is a thin CLI shell around the kernel: it parses a
// Dhall expression and prints its normal form. It does not resolve
// imports, type-check, or encode to CBOR — those belong to external
// collaborators, not the kernel.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/normalize"
	"github.com/dhall-lang/dhall-go/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dhall",
		Short:         "a Dhall expression normalizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newNormalizeCmd())
	return root
}

func newNormalizeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "normalize [expression]",
		Short: "parse and normalize a Dhall expression",
		Long: `normalize reads a Dhall expression — from the command line, a file named
with --file, or standard input if neither is given — and prints its
normal form. Imports in the expression are never resolved; they
normalize to themselves as opaque Embed nodes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			e, err := parser.ParseExpr(name, src)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.Sprint(normalize.Normalize(e)))
			return nil
		},
	}
	flags := pflag.NewFlagSet("normalize", pflag.ContinueOnError)
	flags.StringVarP(&file, "file", "f", "", "read the expression from this file when no expression argument is given")
	cmd.Flags().AddFlagSet(flags)
	return cmd
}

func readInput(cmd *cobra.Command, args []string, file string) (src []byte, name string, err error) {
	switch {
	case len(args) > 0:
		return []byte(args[0]), "<argument>", nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", file, err)
		}
		return b, file, nil
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return b, "<stdin>", nil
	}
}
