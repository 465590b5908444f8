package cmd

import (
	"github.com/nijaru/yt-kb/catalog"
	"github.com/nijaru/yt-kb/models"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Discover videos by search query and fetch their transcripts.",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	plans, err := selectPlans(cmdFlags.catalog, cmdFlags.folders)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.pipeline(a.cfg.SearchInterCallDelay, true)
	if err != nil {
		return err
	}
	_, err = p.RunDiscoverySearch(ctx, plans)
	return err
}

func selectPlans(path string, folders []string) ([]models.SearchPlan, error) {
	plans := catalog.Searches
	if path != "" {
		loaded, err := catalog.LoadPlans(path)
		if err != nil {
			return nil, err
		}
		plans = loaded
	}
	return catalog.FilterPlans(plans, folders)
}
