package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/illusory0x0/illu-string-of-bytes/internal/buf"
	"github.com/illusory0x0/illu-string-of-bytes/internal/mmfile"
	"github.com/illusory0x0/illu-string-of-bytes/utf16le"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate that files are well-formed UTF-16LE",
		Long: `The check command verifies that each file is well-formed UTF-16LE:
an even number of bytes with no unpaired surrogate code units. The first
problem found is reported with its byte offset.

Example:
  u16cat check export.reg notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(paths []string) error {
	bad := 0
	for _, path := range paths {
		if err := checkFile(path); err != nil {
			if errors.Is(err, utf16le.ErrUnpairedSurrogate) || errors.Is(err, utf16le.ErrOddLength) {
				fmt.Printf("%s: %v\n", path, err)
				bad++
				continue
			}
			return fmt.Errorf("%s: %w", path, err)
		}
		printVerbose("%s: ok\n", path)
	}
	if bad > 0 {
		return fmt.Errorf("%d file(s) malformed", bad)
	}
	return nil
}

func checkFile(path string) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer cleanup()

	if buf.U16LE(data) == bomRune {
		data = data[2:]
	}
	_, err = utf16le.DecodeStrict(data, 0, len(data))
	return err
}
