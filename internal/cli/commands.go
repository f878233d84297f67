package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	digestapp "github.com/osvaldoandrade/canonhash/internal/app/digest"
	"github.com/osvaldoandrade/canonhash/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/canonhash/internal/infra/hash"
	"github.com/osvaldoandrade/canonhash/internal/infra/rawjson"
)

func newCanonCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon [file]",
		Short: "Print the canonical form of a JSON document",
		Long:  "Reads a JSON document from a file or stdin and prints its canonical form: object members sorted, whitespace stripped, byte-identical for structurally equal input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			value, err := rawjson.Decode(input)
			if err != nil {
				return err
			}
			canonical, err := (canonicaljson.Canonicalizer{}).Canonicalize(cmd.Context(), value, nil)
			if err != nil {
				return err
			}
			slog.Debug("canonicalized", "bytes_in", len(input), "bytes_out", len(canonical))

			if opts.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Canonical string `json:"canonical"`
				}{Canonical: canonical})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return err
		},
	}
	return cmd
}

func newDigestCmd(opts *RootOptions) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "digest [file]",
		Short: "Print the digest of a JSON document's canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("alg") && opts.Algorithm != "" {
				algorithm = opts.Algorithm
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			value, err := rawjson.Decode(input)
			if err != nil {
				return err
			}
			service := digestapp.NewService(canonicaljson.Canonicalizer{}, resolveAlgorithm)
			sum, err := service.Digest(cmd.Context(), value, algorithm, nil)
			if err != nil {
				return err
			}
			slog.Debug("digested", "algorithm", algorithm, "bytes_in", len(input))

			if opts.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Algorithm string `json:"algorithm"`
					Digest    string `json:"digest"`
				}{Algorithm: strings.ToLower(strings.TrimSpace(algorithm)), Digest: sum})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
			return err
		},
	}
	cmd.Flags().StringVar(&algorithm, "alg", opts.Algorithm, "Digest algorithm (md5, sha1, sha256, sha512)")
	return cmd
}

func newAlgorithmsCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := hash.Names()
			if opts.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Algorithms []string `json:"algorithms"`
				}{Algorithms: names})
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func resolveAlgorithm(name string) (digestapp.Hasher, error) {
	hasher, err := hash.ByName(name)
	if err != nil {
		return nil, err
	}
	return hasher, nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
