package main

import (
	"context"
	"fmt"

	"rental_quotes/internal/adapter/persistence/repository"
	"rental_quotes/internal/config"
	"rental_quotes/internal/infrastructure/database"
	"rental_quotes/internal/infrastructure/email"
	"rental_quotes/internal/infrastructure/notifications"
	"rental_quotes/internal/infrastructure/storage"
	"rental_quotes/internal/usecase"
	"rental_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// app holds the wired use cases shared by every command.
type app struct {
	quotes *usecase.QuoteUseCase
	outbox *usecase.EmailOutboxUseCase
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg)
	s3Client := database.NewS3Client(awsCfg, cfg)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	emailRepo := repository.NewEmailQueueDynamoRepository(ddb, cfg.EmailQueueTable)
	docs := storage.NewS3DocumentStore(s3Client, cfg.DocumentsBucket, logger)

	outbox := usecase.NewEmailOutboxUseCase(emailRepo, newEmailSender(cfg, logger), logger)

	notifier, err := notifications.NewQuoteNotifier(outbox, notifications.Config{
		SiteURL:    cfg.SiteURL,
		SiteName:   cfg.SiteName,
		Currency:   cfg.Currency,
		AdminEmail: cfg.AdminEmail,
	}, logger)
	if err != nil {
		return nil, err
	}

	quotes := usecase.NewQuoteUseCase(quoteRepo, docs, notifier, usecase.QuoteUseCaseConfig{
		AdminEmail: cfg.AdminEmail,
	}, logger)

	return &app{quotes: quotes, outbox: outbox}, nil
}

// newEmailSender delivers over SMTP when configured. Outside production every
// message is also written to the log.
func newEmailSender(cfg *config.Config, logger *zap.Logger) interfaces.IEmailSender {
	sender := email.NewSender(cfg, logger)
	if cfg.SmtpHost == "" || cfg.IsProduction() {
		return sender
	}
	composite := email.NewCompositeSender(sender)
	composite.AddSender(email.NewLoggingSender(cfg.SmtpFromAddress, logger))
	return composite
}
