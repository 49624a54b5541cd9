package main

import (
	"fmt"

	"rental_quotes/internal/auth"
	"rental_quotes/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var drainLimit int

var drainOutboxCmd = &cobra.Command{
	Use:   "drain-outbox",
	Short: "Deliver one batch of due emails and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		limit := drainLimit
		if limit <= 0 {
			limit = cfg.OutboxBatch
		}
		res, err := a.outbox.ProcessDue(cmd.Context(), limit)
		if err != nil {
			return err
		}
		logger.Info("outbox drained",
			zap.Int("processed", res.Processed),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "processed=%d sent=%d failed=%d\n", res.Processed, res.Sent, res.Failed)
		return nil
	},
}

var (
	tokenEmail  string
	tokenUserID string
	tokenClient bool
)

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Mint a bearer token for an operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenEmail == "" {
			return fmt.Errorf("--email is required")
		}
		userID := tokenUserID
		if userID == "" {
			userID = uuid.NewString()
		}
		token, err := auth.GenerateJWT(entities.Caller{
			UserID:  userID,
			Email:   tokenEmail,
			IsAdmin: !tokenClient,
		}, cfg.JwtSecret, cfg.JwtTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	drainOutboxCmd.Flags().IntVar(&drainLimit, "limit", 0, "batch size (defaults to OUTBOX_BATCH)")
	adminTokenCmd.Flags().StringVar(&tokenEmail, "email", "", "operator email recorded in audit notes")
	adminTokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "subject of the token (random when empty)")
	adminTokenCmd.Flags().BoolVar(&tokenClient, "client", false, "mint a non-admin client token instead")
}
