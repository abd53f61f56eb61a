package main

import (
	"fmt"
	"os"

	"github.com/Yuhta/netrc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a netrc file and report what it contains",
	Long:  "Parse a netrc file, failing with a line-numbered error on malformed input, and print a summary of its entries.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolP("quiet", "q", false, "Suppress the summary, only report errors")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose := viper.GetBool("verbose")

	n, err := netrc.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if quiet {
		return nil
	}

	hasDefault := "no default"
	if n.Default != nil {
		hasDefault = "with default"
	}
	fmt.Printf("%s: %d host(s), %d macro(s), %s\n", path, len(n.Hosts), len(n.Macros), hasDefault)

	if verbose {
		for _, h := range n.Hosts {
			fmt.Fprintf(os.Stderr, "  machine %s login %s\n", h.Name, h.Machine.Login)
		}
		for _, m := range n.Macros {
			fmt.Fprintf(os.Stderr, "  macdef %s (%d bytes)\n", m.Name, len(m.Body))
		}
	}
	return nil
}
