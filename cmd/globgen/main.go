// Command globgen pre-compiles glob patterns into Go source.
//
// It reads a YAML manifest naming the target package and the patterns:
//
//	package: globs
//	patterns:
//	  Images: "*.[jp][pn]g"
//	  Config: "*.conf"
//
// and emits a generated file declaring one compiled pattern per entry:
//
//	var Images = goglob.FromTokens(...)
//
// The manifest patterns go through the same compiler used at run time, so
// the emitted patterns match and compare exactly like ones obtained from
// goglob.Compile, just without the run-time compilation. Syntax errors are
// reported at generation time with the pattern name and the offset of the
// offending character.
//
// Usage:
//
//	globgen -o patterns_gen.go patterns.yaml
package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "globgen <manifest.yaml>",
		Short:        "pre-compile glob patterns into Go source",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := LoadManifest(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := Generate(&buf, manifest); err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return os.WriteFile(output, buf.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write generated source to this file instead of stdout")
	return cmd
}
