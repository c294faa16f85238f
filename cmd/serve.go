package cmd

import (
	"github.com/prologistix/backend/admin"
	"github.com/prologistix/backend/api"
	"github.com/prologistix/backend/applications"
	"github.com/prologistix/backend/vtc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCommand = cobra.Command{
	Use:   "serve",
	Short: "starts the http server",
	Long:  `Starts a http server and serves the service`,
	Run: func(cmd *cobra.Command, args []string) {
		//this is our composite root

		//setup datastore
		dataStore := mustResolveUsableDataStore()

		//setup business services
		applicationService := applications.NewService(dataStore, TopLevelLogger.Named("application_service"))
		signInService := admin.NewSigninService(LoadedConfig.Admin, TopLevelLogger.Named("signin_service"))
		sessionService := admin.NewSessionService(
			dataStore,
			LoadedConfig.Admin.SessionTTL,
			TopLevelLogger.Named("session_service"),
		)

		//setup the stats mirror
		snapshotSource := vtc.NewClient(LoadedConfig.VTC, TopLevelLogger.Named("vtc_client"))

		server, err := api.NewServer(LoadedConfig, TopLevelLogger.Named("server"),
			signInService,
			sessionService,
			applicationService,
			snapshotSource,
			FileSystemsConfig,
		)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create server", zap.Error(err))
		}
		if err := server.Start(); err != nil {
			TopLevelLogger.Fatal("Server stopped with error", zap.Error(err))
		}
		TopLevelLogger.Info("Shutdown complete")
	},
}
