package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"

	"github.com/illusory0x0/illu-string-of-bytes/internal/buf"
	"github.com/illusory0x0/illu-string-of-bytes/internal/mmfile"
	"github.com/illusory0x0/illu-string-of-bytes/utf16le"
)

const bomRune = 0xFEFF

var (
	catStrict bool
	catFrom   string
)

func init() {
	cmd := newCatCmd()
	cmd.Flags().BoolVar(&catStrict, "strict", false, "Fail on unpaired surrogates instead of replacing them")
	cmd.Flags().StringVar(&catFrom, "from", "utf16le", "Source encoding (utf16le or utf16be)")
	rootCmd.AddCommand(cmd)
}

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <file>...",
		Short: "Transcode UTF-16 files to UTF-8 on stdout",
		Long: `The cat command transcodes one or more UTF-16 encoded files to UTF-8
and writes the result to stdout. A leading byte-order mark is skipped.

Example:
  u16cat cat notes.txt
  u16cat cat --strict export.reg
  u16cat cat --from utf16be legacy.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
	return cmd
}

func runCat(paths []string) error {
	for _, path := range paths {
		if err := catFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func catFile(path string) error {
	printVerbose("Transcoding: %s\n", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := transcode(data)
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(s)
	return err
}

func transcode(data []byte) (string, error) {
	switch catFrom {
	case "utf16le":
		if buf.U16LE(data) == bomRune {
			data = data[2:]
		}
		if catStrict {
			return utf16le.DecodeStrict(data, 0, len(data))
		}
		return utf16le.Decode(data, 0, len(data))
	case "utf16be":
		// Big-endian input is outside the core decoder's scope; route it
		// through x/text instead.
		if buf.U16BE(data) == bomRune {
			data = data[2:]
		}
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported source encoding %q", catFrom)
	}
}
