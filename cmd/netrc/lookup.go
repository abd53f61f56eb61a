package main

import (
	"fmt"

	"github.com/Yuhta/netrc"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <file> <host>",
	Short: "Resolve credentials for a host",
	Long:  "Look up the machine entry for a host, falling back to the default entry when no host matches. Passwords are redacted unless --show-password is given.",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().Bool("show-password", false, "Print the password instead of redacting it")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	path, host := args[0], args[1]
	showPassword, _ := cmd.Flags().GetBool("show-password")

	n, err := netrc.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	m := n.MachineFor(host)
	if m == nil {
		return fmt.Errorf("no entry for %q in %s and no default", host, path)
	}

	fmt.Printf("login %s\n", m.Login)
	if m.Password != "" {
		if showPassword {
			fmt.Printf("password %s\n", m.Password)
		} else {
			fmt.Println("password <redacted>")
		}
	}
	if m.Account != "" {
		fmt.Printf("account %s\n", m.Account)
	}
	if m.Port != 0 {
		fmt.Printf("port %d\n", m.Port)
	}
	return nil
}
