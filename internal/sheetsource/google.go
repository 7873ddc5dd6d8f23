// Package sheetsource provides grid sources: live Google spreadsheets
// and local Excel workbooks, both serving rows as plain string grids.
package sheetsource

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// GoogleSource reads grids from one Google spreadsheet.
type GoogleSource struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSource builds a read-only Sheets client from a service
// account credentials file.
func NewGoogleSource(ctx context.Context, credentialsFile, spreadsheetID string, logger *zap.Logger) (*GoogleSource, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &GoogleSource{svc: svc, spreadsheetID: spreadsheetID, logger: logger}, nil
}

// NewGoogleSourceFromJSON builds the client from in-memory service
// account key JSON, for deployments that inject credentials through
// the environment instead of a mounted file.
func NewGoogleSourceFromJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string, logger *zap.Logger) (*GoogleSource, error) {
	jwt, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &GoogleSource{svc: svc, spreadsheetID: spreadsheetID, logger: logger}, nil
}

// WorksheetTitles lists the worksheet titles in sheet order.
func (g *GoogleSource) WorksheetTitles(ctx context.Context) ([]string, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet %s: %w", g.spreadsheetID, err)
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// FetchGrid reads a whole worksheet as strings. Formatted values are
// requested so dates arrive the way the operator sees them, not as
// serial numbers.
func (g *GoogleSource) FetchGrid(ctx context.Context, title string) (models.Grid, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, title).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values of %q: %w", title, err)
	}

	grid := make(models.Grid, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		grid = append(grid, cells)
	}
	g.logger.Debug("fetched worksheet",
		zap.String("sheet", title),
		zap.Int("rows", len(grid)))
	return grid, nil
}
