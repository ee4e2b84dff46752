package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docspell/internal/diag"
	"docspell/internal/diagfmt"
	"docspell/internal/lexer"
	"docspell/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a Rust source file",
	Long:  `Tokenize prints the token stream docspell sees for a Rust source file, including doc comment trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fs := source.NewFileSet()
	_, tokens, err := lexer.TokenizeFile(fs, filePath)
	var tokErr *lexer.TokenizeError
	if errors.As(err, &tokErr) {
		base, _ := os.Getwd()
		for _, d := range tokErr.Diags {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.FormatOne(d, fs, base))
		}
		return fmt.Errorf("tokenization failed: %d error(s)", len(tokErr.Diags))
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, tokens, fs)
	}
	return diagfmt.FormatTokensPretty(out, tokens, fs)
}
