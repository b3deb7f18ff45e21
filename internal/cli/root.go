package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zlobste/ip6range/internal/detect"
	"github.com/zlobste/ip6range/ipv6"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

var rootCmd = &cobra.Command{
	Use:   "ip6range",
	Short: "IPv6 address and range calculator",
	Long:  "ip6range expands and compresses IPv6 addresses, derives CIDR range summaries and tests range membership.",
}

var (
	format  outputFormat
	verbose bool
)

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP((*string)(&format), "output", "o", string(outHuman), "output format: human|json|yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug information on stderr")
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inrangeCmd)
	rootCmd.AddCommand(detectCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func render(v any) error {
	w := rootCmd.OutOrStdout()
	switch format {
	case outHuman:
		fmt.Fprintln(w, v)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}

// ---- Commands ----

var expandCmd = &cobra.Command{
	Use:   "expand <IPv6 address>",
	Short: "Expand a compressed IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := ipv6.Expand(args[0])
		if err != nil {
			return err
		}
		return render(addr.Expanded())
	},
}

var compressCmd = &cobra.Command{
	Use:   "compress <expanded IPv6>",
	Short: "Compress an expanded IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := ipv6.Expand(args[0])
		if err != nil {
			return err
		}
		return render(addr.Compressed())
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <IPv6 address>",
	Short: "Show the CIDR range summary for an address at a prefix length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetInt("prefix")
		sum, err := ipv6.Convert(args[0], prefix)
		if err != nil {
			return err
		}
		out := map[string]any{
			"full_address":       sum.FullAddress,
			"compressed_address": sum.CompressedAddress,
			"network_address":    sum.NetworkAddress,
			"prefix_length":      sum.PrefixLength,
			"first_address":      sum.FirstAddress,
			"last_address":       sum.LastAddress,
			"total_addresses":    sum.TotalAddresses,
		}
		return render(out)
	},
}

var inrangeCmd = &cobra.Command{
	Use:   "inrange <IPv6 address> <IPv6 CIDR>",
	Short: "Test whether an address falls within a CIDR range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := ipv6.CheckRange(args[0], args[1])
		if err != nil {
			return err
		}
		return render(map[string]any{"in_range": res.InRange})
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "List the host's candidate IPv6 addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates, err := detect.Candidates(detect.InterfaceSource{}, newLogger())
		if err != nil {
			return err
		}
		return render(candidates)
	},
}

func init() {
	convertCmd.Flags().Int("prefix", 64, "prefix length of the range (0-128)")
}
