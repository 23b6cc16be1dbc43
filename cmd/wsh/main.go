// Command wsh is an interactive shell with line editing, tab completion and
// persistent history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wshell/wsh/pkg/logutil"
	"github.com/wshell/wsh/pkg/shell"
)

var (
	configPath string
	command    string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "wsh",
	Short: "A simple interactive shell",
	Long: `wsh is an interactive shell with single-line editing, context-sensitive
tab completion, and persistent command history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logPath != "" {
			if err := logutil.SetOutputFile(logPath); err != nil {
				return err
			}
		}
		cfg, err := shell.LoadConfig(configPath)
		if err != nil {
			return err
		}
		p := shell.New(cfg, os.Stdin, os.Stdout)
		if command != "" {
			return p.Script(command)
		}
		return p.Interact()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "f", "", "path to the config file (default ~/.wsh.yaml)")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "execute a single command and exit")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wsh:", err)
		os.Exit(1)
	}
}
