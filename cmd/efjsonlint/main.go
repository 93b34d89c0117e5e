// Command efjsonlint tokenizes a JSON or JSON5 file (or stdin) and reports
// the first syntax error it finds, with line and column.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/efjson-go/efjson"
)

var (
	json5             bool
	allowComments     bool
	allowTrailingComma bool
	allowIdentifierKey bool
	verbose           bool

	rootCmd = &cobra.Command{
		Use:          "efjsonlint [path ...]",
		Short:        "efjsonlint",
		Long:         "Tokenize JSON or JSON5 input and report the first syntax error found.",
		SilenceUsage: true,
		RunE:         run,
	}

	log = logrus.New()
)

func init() {
	rootCmd.Flags().BoolVar(&json5, "json5", false, "enable every JSON5 extension")
	rootCmd.Flags().BoolVar(&allowComments, "comments", false, "allow // and /* */ comments")
	rootCmd.Flags().BoolVar(&allowTrailingComma, "trailing-comma", false, "allow a trailing comma in arrays and objects")
	rootCmd.Flags().BoolVar(&allowIdentifierKey, "identifier-keys", false, "allow bare identifier object keys")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every token, not just errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("efjsonlint failed")
		os.Exit(1)
	}
}

func buildOptions() []efjson.ParserOption {
	var opts []efjson.ParserOption
	if json5 {
		opts = append(opts, efjson.WithJSON5())
		return opts
	}
	if allowComments {
		opts = append(opts, efjson.WithComments())
	}
	if allowTrailingComma {
		opts = append(opts, efjson.WithTrailingCommas())
	}
	if allowIdentifierKey {
		opts = append(opts, efjson.WithIdentifierKeys())
	}
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if len(args) == 0 {
		return lintReader("<standard input>", os.Stdin)
	}

	failed := false
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = lintReader(path, f)
		f.Close()
		if err != nil {
			failed = true
			log.WithFields(logrus.Fields{"file": path}).WithError(err).Error("syntax error")
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed to tokenize")
	}
	return nil
}

func lintReader(name string, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	p, err := efjson.New(buildOptions()...)
	if err != nil {
		return err
	}

	input := append([]rune(string(src)), 0)
	count := 0
	for _, r := range input {
		tok := p.FeedOne(r)
		count++
		if code, isErr := tok.Error(); isErr {
			return fmt.Errorf("%s: %s at line %d, column %d", name, code, p.Line(), p.Column())
		}
		if verbose {
			log.WithFields(logrus.Fields{
				"file": name, "type": tok.Type.Category(), "location": tok.Location,
			}).Debug("token")
		}
	}

	log.WithFields(logrus.Fields{"file": name, "tokens": count}).Info("ok")
	return nil
}
