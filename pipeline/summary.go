package pipeline

import (
	"github.com/nijaru/yt-kb/models"
	"github.com/sirupsen/logrus"
)

type Counts struct {
	Total   int
	Skipped int
	Success int
	Failed  int
}

// Fetched is the number of items that needed a transcript call.
func (c Counts) Fetched() int { return c.Success + c.Failed }

func (c *Counts) add(o models.Outcome) {
	switch o.Status {
	case models.StatusSkipped:
		c.Skipped++
	case models.StatusCompleted:
		c.Success++
	case models.StatusFailed:
		c.Failed++
	default:
		return
	}
	c.Total++
}

type FolderCounts struct {
	Folder string
	Counts
}

// Summary holds run-level counters plus one entry per folder in processing
// order.
type Summary struct {
	RunID string
	Mode  string
	Counts
	Folders []FolderCounts

	index map[string]int
}

func newSummary(mode string) *Summary {
	return &Summary{Mode: mode, index: make(map[string]int)}
}

func (s *Summary) folder(name string) *FolderCounts {
	if i, ok := s.index[name]; ok {
		return &s.Folders[i]
	}
	s.index[name] = len(s.Folders)
	s.Folders = append(s.Folders, FolderCounts{Folder: name})
	return &s.Folders[len(s.Folders)-1]
}

func (s *Summary) add(folder string, o models.Outcome) {
	s.folder(folder).add(o)
	s.Counts.add(o)
}

// Folder returns the counters for one folder; zero if it was never seen.
func (s *Summary) Folder(name string) Counts {
	if i, ok := s.index[name]; ok {
		return s.Folders[i].Counts
	}
	return Counts{}
}

func (s *Summary) log(logger *logrus.Entry) {
	for _, f := range s.Folders {
		logger.WithFields(logrus.Fields{
			"folder":  f.Folder,
			"success": f.Success,
			"failed":  f.Failed,
			"skipped": f.Skipped,
		}).Info("Folder summary")
	}
	logger.WithFields(logrus.Fields{
		"mode":    s.Mode,
		"total":   s.Total,
		"fetched": s.Fetched(),
		"success": s.Success,
		"failed":  s.Failed,
		"skipped": s.Skipped,
	}).Info("Done")
}
