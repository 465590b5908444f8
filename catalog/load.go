package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
)

// LoadGroups reads a curated catalog from a JSON file holding an array of
// {"folder", "items": [{"id", "title", "channel", "length"}]} objects.
func LoadGroups(path string) ([]models.Group, error) {
	const op = "catalog.LoadGroups"
	var groups []models.Group
	if err := readJSON(op, path, &groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := checkFolder(op, g.Folder); err != nil {
			return nil, err
		}
		for _, item := range g.Items {
			if item.ID == "" {
				return nil, errors.InvalidInput(op, nil, "item without id in folder "+g.Folder)
			}
		}
	}
	return groups, nil
}

// LoadPlans reads discovery plans from a JSON file holding an array of
// {"folder", "queries": [{"query", "count"}]} objects.
func LoadPlans(path string) ([]models.SearchPlan, error) {
	const op = "catalog.LoadPlans"
	var plans []models.SearchPlan
	if err := readJSON(op, path, &plans); err != nil {
		return nil, err
	}
	for _, p := range plans {
		if err := checkFolder(op, p.Folder); err != nil {
			return nil, err
		}
		for _, q := range p.Queries {
			if strings.TrimSpace(q.Text) == "" || q.Count <= 0 {
				return nil, errors.InvalidInput(op, nil, "query needs text and a positive count in folder "+p.Folder)
			}
		}
	}
	return plans, nil
}

// FilterGroups keeps the groups whose folder is listed, in catalog order. An
// empty list keeps everything.
func FilterGroups(groups []models.Group, folders []string) ([]models.Group, error) {
	if len(folders) == 0 {
		return groups, nil
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Folder
	}
	keep, err := selectFolders("catalog.FilterGroups", names, folders)
	if err != nil {
		return nil, err
	}

	var out []models.Group
	for i, g := range groups {
		if keep[i] {
			out = append(out, g)
		}
	}
	return out, nil
}

func FilterPlans(plans []models.SearchPlan, folders []string) ([]models.SearchPlan, error) {
	if len(folders) == 0 {
		return plans, nil
	}
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.Folder
	}
	keep, err := selectFolders("catalog.FilterPlans", names, folders)
	if err != nil {
		return nil, err
	}

	var out []models.SearchPlan
	for i, p := range plans {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out, nil
}

func selectFolders(op string, names, wanted []string) ([]bool, error) {
	want := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		want[w] = false
	}

	keep := make([]bool, len(names))
	for i, n := range names {
		if _, ok := want[n]; ok {
			keep[i] = true
			want[n] = true
		}
	}
	for _, w := range wanted {
		if !want[w] {
			return nil, errors.NotFound(op, nil, "unknown folder "+w)
		}
	}
	return keep, nil
}

func readJSON(op, path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(op, err, "catalog file not found: "+path)
		}
		return errors.StorageFailure(op, err, "failed to read catalog")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidInput(op, err, "malformed catalog")
	}
	return nil
}

// Folder names become directory names.
func checkFolder(op, folder string) error {
	if folder == "" || folder == "." || folder == ".." || strings.ContainsAny(folder, `/\`) {
		return errors.InvalidInput(op, nil, "invalid folder name "+folder)
	}
	return nil
}
