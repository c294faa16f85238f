package cmd

import (
	"fmt"
	"os"

	"github.com/prologistix/backend/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ConfigFileLocation is of the config to load
var ConfigFileLocation string

// TopLevelLogger is the logger all loggers come from
var TopLevelLogger *zap.Logger

// LoadedConfig is the currently loaded configuration after initial bootstrapping
var LoadedConfig *config.Configuration

// FileSystemsConfig consists of the filesystems to use (either local or embed)
var FileSystemsConfig *config.FileSystems

var rootCommand = cobra.Command{
	Use:   "prologistix",
	Short: "prologistix vtc community backend",
	Long: `prologistix is the backend of the PROLOGISTIX virtual trucking
	community: driver application intake with a session gated admin panel,
	a TruckersMP stats mirror and a discord slash-command front-end`,
	Run: func(cmd *cobra.Command, args []string) {
		serveCommand.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {

	rootCommand.PersistentFlags().
		StringVar(&ConfigFileLocation, "config", "", "config file to be used")

	applicationCommand.AddCommand(&listApplicationsCommand)
	applicationCommand.AddCommand(&approveApplicationCommand)
	applicationCommand.AddCommand(&rejectApplicationCommand)

	commandsCommand.AddCommand(&deployCommandsCommand)
	commandsCommand.AddCommand(&resetCommandsCommand)

	rootCommand.AddCommand(&applicationCommand)
	rootCommand.AddCommand(&commandsCommand)
	rootCommand.AddCommand(&serveCommand)
	rootCommand.AddCommand(&botCommand)
	rootCommand.AddCommand(&hashCommand)
}
