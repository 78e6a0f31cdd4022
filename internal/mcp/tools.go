package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/swimnotes/internal/models"
	"github.com/meltforce/swimnotes/internal/practice"
)

// --- Tool definitions ---

var toolParsePractice = mcp.NewTool("parse_practice",
	mcp.WithDescription("Parse raw swim practice text into structured sets with exercises, rests and comments, plus total yardage, estimated time in seconds and a 0-100 difficulty score."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw practice text as a coach would type it, e.g. \"3x\\n4x50 Free fast 1:00\\n2x100 IM moderate 2:30\"")),
)

var toolFormatPractice = mcp.NewTool("format_practice",
	mcp.WithDescription("Render swim practice text in canonical form: set multiplier headers, tab indentation, and right-aligned running yardage totals between sets."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw practice text to canonicalize")),
)

var toolScorePractice = mcp.NewTool("score_practice",
	mcp.WithDescription("Compute the 0-100 difficulty score for swim practice text, with the per-component breakdown (yardage, interval tightness, intensity keywords)."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw practice text to score")),
)

// --- Tool handlers ---

func (h *handlers) parsePractice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	parsed := practice.Parse(text)

	result, err := mcp.NewToolResultJSON(models.NewPracticeView(parsed))
	if err != nil {
		h.log.Error("mcp parse_practice", "error", err)
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) formatPractice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	return mcp.NewToolResultText(practice.Format(practice.Parse(text))), nil
}

func (h *handlers) scorePractice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	breakdown := practice.ScoreBreakdown(practice.Parse(text), text)

	result, err := mcp.NewToolResultJSON(breakdown)
	if err != nil {
		h.log.Error("mcp score_practice", "error", err)
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) strokeReference(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(newStrokeReferenceDoc())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
