// Package levelapi provides structures and utilities for serving generated
// levels and recording completions.
package levelapi

import (
	"strings"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/beka-birhanu/endless-maze-api/game"
)

// MazeResponse represents a generated level as sent to clients. The grid is
// rendered row by row with '#' for walls and ' ' for passages so thin clients
// can display it without decoding a graph.
type MazeResponse struct {
	Level        int           `json:"level"`
	Tier         string        `json:"tier"`
	Algorithm    string        `json:"algorithm"`
	BraidPercent int           `json:"braid_percent"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Start        game.Position `json:"start"`
	Exit         game.Position `json:"exit"`
	Rows         []string      `json:"rows"`
}

// CompleteRequest reports a finished level run.
type CompleteRequest struct {
	ElapsedMs int64 `json:"elapsed_ms" binding:"required"`
}

// LeaderboardEntryResponse is one ranked completion time.
type LeaderboardEntryResponse struct {
	PlayerID string `json:"player_id"`
	TimeMs   int64  `json:"time_ms"`
}

// ProgressResponse is one per-level completion record.
type ProgressResponse struct {
	Level       int       `json:"level"`
	Completed   bool      `json:"completed"`
	BestTimeMs  int64     `json:"best_time_ms"`
	CompletedAt time.Time `json:"completed_at"`
}

// renderRows flattens the maze grid into printable rows.
func renderRows(m game.Maze) []string {
	width, height := m.Dimensions()
	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			if m.IsWall(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// progressResponseFrom maps a domain record to its transport shape.
func progressResponseFrom(p dmn.Progress) ProgressResponse {
	return ProgressResponse{
		Level:       p.Level,
		Completed:   p.Completed,
		BestTimeMs:  p.BestTime.Milliseconds(),
		CompletedAt: p.CompletedAt,
	}
}
