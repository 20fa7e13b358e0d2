// Package export defines the export hooks the surrounding UI calls. The
// console itself ships only a stub: the buttons exist, the formats don't.
package export

import (
	"log/slog"
)

// View is a rendered table handed to an exporter: a header row plus data
// rows, already filtered and sorted by the caller.
type View struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Exporter produces a document from a rendered view.
type Exporter interface {
	PDF(view View) error
	Excel(view View) error
}

// Stub is the placeholder exporter: it only logs a notice, mirroring the
// console's unimplemented export buttons.
type Stub struct {
	Logger *slog.Logger
}

func (s Stub) PDF(view View) error {
	s.logger().Info("export not available", "format", "pdf", "view", view.Title, "rows", len(view.Rows))
	return nil
}

func (s Stub) Excel(view View) error {
	s.logger().Info("export not available", "format", "excel", "view", view.Title, "rows", len(view.Rows))
	return nil
}

func (s Stub) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
