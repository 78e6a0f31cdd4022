// Package mcp exposes the practice parser to LLM clients over the Model
// Context Protocol. The tools wrap the pure core operations; the server
// holds no state between calls.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/swimnotes/internal/models"
)

// New creates an MCP server with all tools and resources registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("swimnotes", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Swim practice text tools. Parse coach-written practice notes into structured sets and exercises, compute total yardage, estimated duration and a 0-100 difficulty score, or render the canonical practice text. Parsing is total: malformed lines become comments instead of errors."),
	)

	h := &handlers{log: log}

	s.AddTools(
		server.ServerTool{Tool: toolParsePractice, Handler: h.parsePractice},
		server.ServerTool{Tool: toolFormatPractice, Handler: h.formatPractice},
		server.ServerTool{Tool: toolScorePractice, Handler: h.scorePractice},
	)

	s.AddResources(
		server.ServerResource{Resource: resStrokeReference, Handler: h.strokeReference},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	log *slog.Logger
}

// --- Resource definitions ---

var resStrokeReference = mcp.NewResource(
	"swimnotes://stroke_reference",
	"Stroke Reference",
	mcp.WithResourceDescription("Canonical stroke names with base pace per 100 yards used for time estimates"),
	mcp.WithMIMEType("application/json"),
)

// strokeReferenceDoc is the payload behind swimnotes://stroke_reference.
type strokeReferenceDoc struct {
	Strokes        []string       `json:"strokes"`
	BasePacePer100 map[string]int `json:"base_pace_per_100"`
}

func newStrokeReferenceDoc() strokeReferenceDoc {
	return strokeReferenceDoc{
		Strokes: []string{
			models.StrokeFree, models.StrokeBack, models.StrokeBreast,
			models.StrokeFly, models.StrokeIM, models.StrokeDrill,
			models.StrokeKick, models.StrokeChoice,
		},
		BasePacePer100: models.BasePaces(),
	}
}
