// Command depannelctl drives the intervention lifecycle from a terminal,
// directly against the Depannel backing service.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "depannelctl",
	Short:         "depannelctl - Depannel intervention CLI",
	Long:          `depannelctl lists interventions and requests lifecycle transitions on behalf of the signed-in manager or agent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	apiURL      string
	sessionPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Backing service base URL (defaults to DEPANNEL_API_URL or the configured value)")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "", "Session file (defaults to the user config dir)")

	rootCmd.AddCommand(loginCmd, logoutCmd, listCmd, showCmd, actionsCmd, actCmd, summaryCmd, agentsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}
