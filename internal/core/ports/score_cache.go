package ports

import "context"

// RankEntry is one row of the cached leaderboard.
type RankEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// ScoreCache is the ranking cache updated after every progression write.
// Reads tolerate staleness; the relational store stays authoritative.
type ScoreCache interface {
	Upsert(ctx context.Context, username string, score int64) error
	Top(ctx context.Context, limit int) ([]RankEntry, error)
}
