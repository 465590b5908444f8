package models

import "fmt"

// WorkItem is one video to fetch a transcript for.
type WorkItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel"`
	// Length is an approximate duration label such as "~5 min". Items found
	// through discovery leave it empty.
	Length string `json:"length,omitempty"`
}

type Group struct {
	Folder string     `json:"folder"`
	Items  []WorkItem `json:"items"`
}

type Query struct {
	Text  string `json:"query"`
	Count int    `json:"count"`
}

type SearchPlan struct {
	Folder  string  `json:"folder"`
	Queries []Query `json:"queries"`
}

// Candidate is a single search hit from a discovery source.
type Candidate struct {
	ID    string
	Title string
}

func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}

type Status string

const (
	StatusSkipped   Status = "skipped"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Outcome reports what ProcessItem did with an item.
type Outcome struct {
	Status Status
	// Reason holds the failure description when Status is StatusFailed.
	Reason string
}

func (o Outcome) Skipped() bool { return o.Status == StatusSkipped }
func (o Outcome) Fetched() bool { return o.Status == StatusCompleted || o.Status == StatusFailed }
func (o Outcome) Success() bool { return o.Status == StatusCompleted }
