package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/config"
	"github.com/zamzamtour/umrah-voucher/internal/hotels"
	httpiface "github.com/zamzamtour/umrah-voucher/internal/interfaces/http"
	"github.com/zamzamtour/umrah-voucher/internal/service"
	"github.com/zamzamtour/umrah-voucher/internal/sheetsource"
	"github.com/zamzamtour/umrah-voucher/internal/voucher"
	"github.com/zamzamtour/umrah-voucher/pkg/utils"
)

func main() {
	// Local .env overrides for development; absent in production.
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Umrah Voucher Service",
		zap.String("version", "1.0.0"),
		zap.String("source", cfg.Source.Kind),
		zap.Int("port", cfg.Server.Port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, cleanup, err := newGridSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize grid source", zap.Error(err))
	}
	defer cleanup()

	resolver := newResolver(cfg, logger)
	svc := service.NewService(src, resolver, voucherDefaults(cfg), logger)
	sessions := service.NewSessions(cfg.Session.Size, cfg.Session.TTL)

	server := httpiface.NewServer(httpiface.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, httpiface.NewHandlers(svc, sessions, logger), logger)

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

func newGridSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (hotels.GridSource, func(), error) {
	switch cfg.Source.Kind {
	case "workbook":
		wb, err := sheetsource.OpenWorkbook(cfg.Source.WorkbookPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { _ = wb.Close() }, nil
	default:
		if js := os.Getenv("SHEETS_CREDENTIALS_JSON"); js != "" {
			g, err := sheetsource.NewGoogleSourceFromJSON(ctx, []byte(js), cfg.Sheets.SpreadsheetID, logger)
			if err != nil {
				return nil, nil, err
			}
			return g, func() {}, nil
		}
		g, err := sheetsource.NewGoogleSource(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, logger)
		if err != nil {
			return nil, nil, err
		}
		return g, func() {}, nil
	}
}

func newResolver(cfg *config.Config, logger *zap.Logger) *hotels.Resolver {
	if cfg.Voucher.TitleYear > 0 {
		return hotels.NewResolverWithYear(logger, cfg.Voucher.TitleYear)
	}
	return hotels.NewResolver(logger)
}

func voucherDefaults(cfg *config.Config) voucher.Defaults {
	d := voucher.DefaultValues()
	if cfg.Voucher.Service != "" {
		d.Service = cfg.Voucher.Service
	}
	if cfg.Voucher.Meal != "" {
		d.Meal = cfg.Voucher.Meal
	}
	if cfg.Voucher.Guide != "" {
		d.Guide = cfg.Voucher.Guide
	}
	if cfg.Voucher.Excursions != "" {
		d.Excursions = cfg.Voucher.Excursions
	}
	if cfg.Voucher.TechContact != "" {
		d.TechContact = cfg.Voucher.TechContact
	}
	if cfg.Voucher.CheckIn != "" {
		d.CheckIn = cfg.Voucher.CheckIn
	}
	return d
}
