package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/wmfl-standings/internal/app"
	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
	"github.com/spf13/cobra"
)

type serviceFactory func(ctx context.Context) (*app.Services, error)

func newRootCmd(newServices serviceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:          "wmflctl",
		Short:        "Import and synchronize WMFL tournament standings",
		SilenceUsage: true,
	}

	root.AddCommand(
		newImportCmd(newServices),
		newSyncCmd(newServices),
		newLogsCmd(newServices),
	)
	return root
}

func newImportCmd(newServices serviceFactory) *cobra.Command {
	var tournamentID int64

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Fetch a tournament standings page and upsert its teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tournamentID < 0 {
				return fmt.Errorf("--tournament must not be negative")
			}
			return withServices(cmd, newServices, func(ctx context.Context, services *app.Services) (any, error) {
				return services.Import.Import(ctx, usecase.ImportInput{TournamentID: tournamentID})
			})
		},
	}
	cmd.Flags().Int64Var(&tournamentID, "tournament", 0, "tournament id (default: DEFAULT_TOURNAMENT_ID)")
	return cmd
}

func newSyncCmd(newServices serviceFactory) *cobra.Command {
	var tournamentID int64

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Recompute positions and points for one or every active tournament",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tournamentID < 0 {
				return fmt.Errorf("--tournament must not be negative")
			}
			return withServices(cmd, newServices, func(ctx context.Context, services *app.Services) (any, error) {
				if tournamentID > 0 {
					return services.Sync.SyncTournament(ctx, tournamentID)
				}
				return services.Sync.SyncAll(ctx)
			})
		},
	}
	cmd.Flags().Int64Var(&tournamentID, "tournament", 0, "tournament id (default: all active tournaments)")
	return cmd
}

func newLogsCmd(newServices serviceFactory) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the latest synchronization log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			return withServices(cmd, newServices, func(ctx context.Context, services *app.Services) (any, error) {
				entries, err := services.Sync.ListLogs(ctx, limit)
				if err != nil {
					return nil, err
				}
				return logEntryViews(entries), nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries (default: SYNC_LOG_LIMIT)")
	return cmd
}

func withServices(cmd *cobra.Command, newServices serviceFactory, fn func(context.Context, *app.Services) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	services, err := newServices(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	out, err := fn(ctx, services)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

type logEntryView struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournament_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	TeamsUpdated int    `json:"teams_updated"`
	SyncTime     string `json:"sync_time"`
}

func logEntryViews(entries []synclog.Entry) []logEntryView {
	out := make([]logEntryView, 0, len(entries))
	for _, entry := range entries {
		out = append(out, logEntryView{
			ID:           entry.ID,
			TournamentID: entry.TournamentID,
			Status:       string(entry.Status),
			Message:      entry.Message,
			TeamsUpdated: entry.TeamsUpdated,
			SyncTime:     entry.SyncTime.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
