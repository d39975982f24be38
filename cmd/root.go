package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/spf13/cobra"

	"github.com/Adityakumarsinghstm/ChatBot/internal/app"
	"github.com/Adityakumarsinghstm/ChatBot/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "chatbot",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
