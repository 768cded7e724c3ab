// Package trialapi exposes exploration trials over HTTP.
package trialapi

import (
	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/beka-birhanu/vinom-explorer/service/i"
)

// TrialRequest asks for a single exploration run.
type TrialRequest struct {
	Map   string               `json:"map" binding:"required"`
	Start *explorer.Coordinate `json:"start"` // Optional; the map's suggested start when absent.
}

// BatchRequest asks for a run from every spawn point of a map.
type BatchRequest struct {
	Map string `json:"map" binding:"required"`
}

// ReplayQuery holds the query parameters of the replay route.
type ReplayQuery struct {
	Steps int  `form:"steps" binding:"min=0"`
	X     *int `form:"x"`
	Y     *int `form:"y"`
}

// LeaderboardQuery holds the query parameters of the leaderboard route.
type LeaderboardQuery struct {
	Limit int64 `form:"limit,default=10" binding:"min=1,max=100"`
}

// HistoryQuery holds the query parameters of the trial history route.
type HistoryQuery struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
}

// MapsResponse lists the known maps.
type MapsResponse struct {
	Maps []string `json:"maps"`
}

// LeaderboardResponse represents the best trials of a map.
type LeaderboardResponse struct {
	Map     string               `json:"map"`
	Entries []i.LeaderboardEntry `json:"entries"`
}

// HistoryResponse lists the recorded trials of a map, newest first.
type HistoryResponse struct {
	Map    string       `json:"map"`
	Trials []*dmn.Trial `json:"trials"`
}
