package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "echobot",
	Short: "Echo bot service for channel connector webhooks",
	Long: `Echobot receives conversational activities from a channel connector
over HTTP, validates the connector's credential, and replies to every
message with an echo of its text. Failures inside the bot are contained
and surfaced in the conversation instead of crashing the service.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".echobot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
