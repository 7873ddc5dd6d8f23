package hotels

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// DefaultCheckIn is the check-in time hotel sheets imply when none is
// written out.
const DefaultCheckIn = "16:00"

// GridSource is the read-only spreadsheet contract the resolver needs:
// list worksheet titles, fetch one worksheet as a grid snapshot.
type GridSource interface {
	WorksheetTitles(ctx context.Context) ([]string, error)
	FetchGrid(ctx context.Context, title string) (models.Grid, error)
}

var hotelsTitleRe = regexp.MustCompile(`(?i)hotel|отел|размещение|accommodation`)

// similarSheetLimit caps how many top worksheets the density heuristic
// inspects when no explicitly titled hotels sheet matches.
const (
	similarSheetLimit = 6
	similarScanRows   = 12
	similarScanCols   = 6
)

// ResolveResult carries the resolved blocks and which worksheet
// produced them.
type ResolveResult struct {
	Blocks []models.HotelBlock
	Sheet  string
}

// HotelSheets returns the worksheet titles that look like hotel or
// accommodation sheets by name.
func HotelSheets(titles []string) []string {
	var out []string
	for _, t := range titles {
		if hotelsTitleRe.MatchString(extract.NormSpaces(t)) {
			out = append(out, t)
		}
	}
	return out
}

// looksLikeHotelSheet applies the density heuristic: the first rows of
// a hotel-like sheet mention a city and something date-shaped.
func looksLikeHotelSheet(grid models.Grid) bool {
	var b strings.Builder
	for r := 0; r < min(grid.NumRows(), similarScanRows); r++ {
		row := grid.Row(r)
		for c := 0; c < min(len(row), similarScanCols); c++ {
			b.WriteString(row[c])
			b.WriteByte(' ')
		}
	}
	blob := b.String()
	return extract.IsCityToken(blob) && extract.IsDateLike(blob)
}

// ResolveForPackage searches the spreadsheet's worksheets for the hotel
// blocks belonging to a package: explicitly titled hotels sheets are
// tried first, then the top worksheets passing the city+date density
// heuristic. The first sheet yielding any blocks wins; a single-city
// result is acceptable. A nil result is not an error — the caller
// degrades to a minimal voucher.
func (r *Resolver) ResolveForPackage(ctx context.Context, src GridSource, pkgTitle string) (*ResolveResult, error) {
	titles, err := src.WorksheetTitles(ctx)
	if err != nil {
		return nil, err
	}

	tried := make(map[string]bool)

	for _, title := range HotelSheets(titles) {
		tried[title] = true
		if res := r.trySheet(ctx, src, title, pkgTitle); res != nil {
			return res, nil
		}
	}

	for i, title := range titles {
		if i >= similarSheetLimit {
			break
		}
		if tried[title] {
			continue
		}
		grid, err := src.FetchGrid(ctx, title)
		if err != nil || !looksLikeHotelSheet(grid) {
			continue
		}
		if blocks := r.BlocksForPackage(grid, pkgTitle); len(blocks) > 0 {
			return &ResolveResult{Blocks: blocks, Sheet: title}, nil
		}
	}

	if r.logger != nil {
		r.logger.Debug("no hotel blocks resolved on any sheet",
			zap.String("package", pkgTitle),
			zap.Int("sheets", len(titles)))
	}
	return nil, nil
}

func (r *Resolver) trySheet(ctx context.Context, src GridSource, title, pkgTitle string) *ResolveResult {
	grid, err := src.FetchGrid(ctx, title)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("failed to fetch hotel worksheet",
				zap.String("sheet", title), zap.Error(err))
		}
		return nil
	}
	blocks := r.BlocksForPackage(grid, pkgTitle)
	if len(blocks) == 0 {
		return nil
	}
	if r.logger != nil {
		r.logger.Info("resolved hotel blocks",
			zap.String("package", pkgTitle),
			zap.String("sheet", title),
			zap.Int("blocks", len(blocks)))
	}
	return &ResolveResult{Blocks: blocks, Sheet: title}
}
