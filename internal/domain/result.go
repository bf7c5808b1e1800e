package domain

import "time"

// QueryResult is a persisted record of one query and its output.
type QueryResult struct {
	Operation string            `json:"operation"`
	Params    map[string]string `json:"params,omitempty"`
	RanAt     time.Time         `json:"ran_at"`
	Vehicles  []Vehicle         `json:"vehicles"`
}
