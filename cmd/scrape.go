package cmd

import (
	"github.com/nijaru/yt-kb/catalog"
	"github.com/nijaru/yt-kb/models"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch transcripts for the curated video catalog.",
	Args:  cobra.NoArgs,
	RunE:  runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	groups, err := selectGroups(cmdFlags.catalog, cmdFlags.folders)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.pipeline(a.cfg.InterCallDelay, false)
	if err != nil {
		return err
	}
	_, err = p.RunBatch(ctx, groups)
	return err
}

func selectGroups(path string, folders []string) ([]models.Group, error) {
	groups := catalog.Curated
	if path != "" {
		loaded, err := catalog.LoadGroups(path)
		if err != nil {
			return nil, err
		}
		groups = loaded
	}
	return catalog.FilterGroups(groups, folders)
}
