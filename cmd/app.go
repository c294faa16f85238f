package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/prologistix/backend/applications"
	"github.com/spf13/cobra"
)

var applicationCommand = cobra.Command{
	Use:   "applications",
	Short: "manages driver applications from the command line",
}

var listApplicationsCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all driver applications",
	Long:  `This will list all driver applications, newest first`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		service := applications.NewService(
			dataStore,
			TopLevelLogger.Named("application_service"),
		)
		lst, err := service.List(context.Background(), "", "")
		if err != nil {
			fmt.Printf("Unable to load applications: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%s\t%s\r\n",
			"ID",
			"Name",
			"Steam",
			"Status",
			"CreatedAt",
		)
		for _, v := range lst {
			fmt.Fprintf(
				w,
				"%d\t%s\t%s\t%s\t%s\r\n",
				v.ID,
				v.Name,
				v.Steam,
				v.Status,
				v.CreatedAt,
			)
		}
		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", len(lst))
		w.Flush()
	},
}

func setStatusRun(status applications.Status) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("expected exactly one application id")
			os.Exit(1)
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("not a valid application id: %s\r\n", args[0])
			os.Exit(1)
			return
		}
		dataStore := mustResolveUsableDataStore()
		service := applications.NewService(
			dataStore,
			TopLevelLogger.Named("application_service"),
		)
		if err := service.SetStatus(cmd.Context(), id, status); err != nil {
			fmt.Printf("Unable to update application %d: %s\r\n", id, err)
			os.Exit(1)
			return
		}
		fmt.Printf("Application %d is now %s", id, status)
	}
}

var approveApplicationCommand = cobra.Command{
	Use:   "approve [id]",
	Short: "Approves a driver application",
	Args:  cobra.ExactArgs(1),
	Run:   setStatusRun(applications.StatusApproved),
}

var rejectApplicationCommand = cobra.Command{
	Use:   "reject [id]",
	Short: "Rejects a driver application",
	Args:  cobra.ExactArgs(1),
	Run:   setStatusRun(applications.StatusRejected),
}
