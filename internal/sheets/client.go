// Package sheets adapts the Google Sheets API into the snapshot
// pipeline: it reads the header and session ranges as raw strings and
// hands them to the builder.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/caesbrissa/visual-poker/internal/config"
	"github.com/caesbrissa/visual-poker/internal/model"
	"github.com/caesbrissa/visual-poker/internal/pipeline"
)

// Client reads the source workbook with readonly service-account
// credentials.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	schema        pipeline.Schema
	builder       pipeline.Builder
}

// New builds the Sheets service from the configured credentials.
func New(ctx context.Context, cfg config.Config, builder pipeline.Builder) (*Client, error) {
	creds, err := serviceAccountJSON(cfg.ClientEmail, cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("building credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		schema:        cfg.Sheet,
		builder:       builder,
	}, nil
}

// serviceAccountJSON assembles a credentials document from the two env
// values. Private keys pasted into env files commonly arrive with
// literal \n sequences and wrapping quotes; both are repaired here.
func serviceAccountJSON(email, key string) ([]byte, error) {
	if email == "" || key == "" {
		return nil, fmt.Errorf("client email and private key are required")
	}

	key = strings.Trim(key, `"`)
	key = strings.ReplaceAll(key, `\n`, "\n")

	return json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": email,
		"private_key":  key,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

// Fetch reads the header row and the session rows. Both ranges come back
// as trimmed-length string matrices; the mapper tolerates short rows.
func (c *Client) Fetch(ctx context.Context) (header []string, rows [][]string, err error) {
	headerResp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.schema.HeaderRange).Context(ctx).Do()
	if err != nil {
		return nil, nil, &SourceError{Op: "read header range", Hints: accessHints(c.schema.SheetName), Err: err}
	}
	sessionResp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.schema.SessionRange).Context(ctx).Do()
	if err != nil {
		return nil, nil, &SourceError{Op: "read session range", Hints: accessHints(c.schema.SheetName), Err: err}
	}

	if len(headerResp.Values) > 0 {
		header = cellsToStrings(headerResp.Values[0])
	}
	for _, row := range sessionResp.Values {
		rows = append(rows, cellsToStrings(row))
	}

	if len(rows) == 0 {
		return nil, nil, &SourceError{Op: "read session range", Hints: accessHints(c.schema.SheetName), Err: ErrNoData}
	}
	return header, rows, nil
}

// Snapshot runs one full fetch-and-build cycle.
func (c *Client) Snapshot(ctx context.Context, now time.Time) (*model.Snapshot, error) {
	header, rows, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := c.builder.Build(header, rows, now)
	if err != nil {
		return nil, &SourceError{Op: "assemble snapshot", Hints: accessHints(c.schema.SheetName), Err: err}
	}
	return snap, nil
}

// cellsToStrings flattens the API's interface{} cells. Values are
// requested unformatted-as-rendered, so fmt.Sprint covers every type the
// API actually returns.
func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprint(c)
	}
	return out
}
