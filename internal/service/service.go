package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/hotels"
	"github.com/zamzamtour/umrah-voucher/internal/models"
	"github.com/zamzamtour/umrah-voucher/internal/schedule"
	"github.com/zamzamtour/umrah-voucher/internal/transport"
	"github.com/zamzamtour/umrah-voucher/internal/voucher"
)

// Service runs the extraction pipeline against one spreadsheet.
type Service struct {
	src        hotels.GridSource
	resolver   *hotels.Resolver
	classifier *transport.Classifier
	schedules  *schedule.Builder
	defaults   voucher.Defaults
	logger     *zap.Logger
}

// NewService wires the pipeline components around a grid source.
func NewService(src hotels.GridSource, resolver *hotels.Resolver, defaults voucher.Defaults, logger *zap.Logger) *Service {
	return &Service{
		src:        src,
		resolver:   resolver,
		classifier: transport.NewClassifier(logger),
		schedules:  schedule.NewBuilder(logger),
		defaults:   defaults,
		logger:     logger,
	}
}

// Worksheets lists the spreadsheet's worksheet titles, month rosters
// first.
func (s *Service) Worksheets(ctx context.Context) ([]string, error) {
	titles, err := s.src.WorksheetTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list worksheets: %w", err)
	}
	ordered := make([]string, 0, len(titles))
	for _, t := range titles {
		if IsMonthSheet(t) {
			ordered = append(ordered, t)
		}
	}
	for _, t := range titles {
		if !IsMonthSheet(t) {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// Packages lists the package markers found on one worksheet.
func (s *Service) Packages(ctx context.Context, sheetTitle string) ([]models.PackageMarker, error) {
	grid, err := s.src.FetchGrid(ctx, sheetTitle)
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", sheetTitle, err)
	}
	return FindPackages(grid), nil
}

// ScheduleMaps builds the flight lookup maps from the spreadsheet's
// flights worksheet. The fixed-column layout is tried first; when it
// yields nothing the sheet is re-scanned cell by cell.
func (s *Service) ScheduleMaps(ctx context.Context) (models.ScheduleMaps, models.Grid, error) {
	titles, err := s.src.WorksheetTitles(ctx)
	if err != nil {
		return models.ScheduleMaps{}, nil, fmt.Errorf("list worksheets: %w", err)
	}
	for _, t := range titles {
		if !IsFlightsSheet(t) {
			continue
		}
		grid, err := s.src.FetchGrid(ctx, t)
		if err != nil {
			s.logger.Warn("flights worksheet unreadable", zap.String("sheet", t), zap.Error(err))
			continue
		}
		maps := s.schedules.BuildMaps(grid)
		if mapsEmpty(maps) {
			maps = s.schedules.BuildMapsSmart(grid)
		}
		return maps, grid, nil
	}
	return models.NewScheduleMaps(), nil, nil
}

func mapsEmpty(maps models.ScheduleMaps) bool {
	for _, m := range maps {
		if len(m) > 0 {
			return false
		}
	}
	return true
}

// CollectVoucher assembles the voucher for one package marker. The
// pipeline degrades instead of failing: a missing hotels sheet, an
// unreadable flights sheet or an unmatched date leaves the affected
// fields at their defaults. Only the initial worksheet fetch can error.
func (s *Service) CollectVoucher(ctx context.Context, sheetTitle string, pkg models.PackageMarker) (*models.Voucher, error) {
	grid, err := s.src.FetchGrid(ctx, sheetTitle)
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", sheetTitle, err)
	}

	blocks, source := s.collectBlocks(ctx, grid, sheetTitle, pkg)
	info := s.classifier.ClassifyAfterPackage(grid, pkg.Row)

	b := voucher.NewBuilder(s.defaults).
		WithBlocks(blocks).
		WithTransport(&info).
		WithSourceSheet(source)

	if plan := s.collectFlights(ctx, grid, pkg); plan != nil {
		b = b.WithFlights(plan)
	}

	return b.Build(), nil
}

// collectBlocks resolves the city stays, nearest evidence first: rows
// under the marker, then the hotels worksheets, then the packages
// config sheet.
func (s *Service) collectBlocks(ctx context.Context, grid models.Grid, sheetTitle string, pkg models.PackageMarker) ([]models.HotelBlock, string) {
	if blocks := s.resolver.BlocksNearRow(grid, pkg.Row); len(blocks) > 0 {
		return blocks, sheetTitle
	}

	res, err := s.resolver.ResolveForPackage(ctx, s.src, pkg.Title)
	if err != nil {
		s.logger.Warn("hotel sheet resolution failed", zap.String("package", pkg.Title), zap.Error(err))
	}
	if res != nil && len(res.Blocks) > 0 {
		return res.Blocks, res.Sheet
	}

	if blocks := s.resolver.ConfigForPackage(grid, pkg.Title); len(blocks) > 0 {
		return blocks, sheetTitle
	}

	s.logger.Info("no hotel blocks found", zap.String("package", pkg.Title))
	return nil, ""
}

// collectFlights pairs the package with its rotation. Departure and
// return dates come from explicit rotation rows near the marker when
// present, falling back to the title's own span; the direction comes
// from context, then from a unique schedule match, then defaults to
// the Jeddah round trip.
func (s *Service) collectFlights(ctx context.Context, grid models.Grid, pkg models.PackageMarker) *models.FlightPlan {
	maps, flightsGrid, err := s.ScheduleMaps(ctx)
	if err != nil || flightsGrid == nil {
		return nil
	}

	dep, ret, ok := s.flightDates(flightsGrid, pkg)
	if !ok {
		return nil
	}

	dir := schedule.TokenFromContext(grid, pkg.Row)
	if dir == models.DirectionUnknown {
		dir = schedule.InferToken(maps, dep, ret)
	}
	if dir == models.DirectionUnknown {
		dir = schedule.TokenFromDirectionText(pkg.Title)
	}

	if plan, ok := schedule.AssembleFromRow(flightsGrid, dep, ret, dir); ok {
		return plan
	}
	if plan, ok := schedule.Assemble(maps, dep, ret, dir); ok {
		return plan
	}
	s.logger.Info("no flight pairing for package",
		zap.String("package", pkg.Title),
		zap.String("direction", dir.Token()))
	return nil
}

func (s *Service) flightDates(flightsGrid models.Grid, pkg models.PackageMarker) (string, string, bool) {
	if pairs := schedule.FindFlightDates(flightsGrid, pkg.Title); len(pairs) > 0 {
		return pairs[0].Depart, pairs[0].Return, true
	}
	start, end, ok := s.resolver.TitleDates(pkg.Title)
	if !ok {
		return "", "", false
	}
	return extract.FormatDMY(start), extract.FormatDMY(end), true
}
