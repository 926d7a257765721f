package orchestration

import (
	"fmt"
	"os"

	"github.com/infra-recipes/gobuilder/api"
	"github.com/olekukonko/tablewriter"
)

// HandleExit exits the process with the aggregated status of the run
func HandleExit(results []api.StepResult) {

	if !api.HasSucceededStatus(results) {
		os.Exit(1)
	}

	os.Exit(0)
}

// RenderStats prints a summary table of all executed and skipped steps
func RenderStats(results []api.StepResult) {

	data := make([][]string, 0)

	durationTotal := 0.0
	statusTotal := api.GetAggregatedStatus(results)

	for _, r := range results {

		durationTotal += r.Duration.Seconds()

		data = append(data, []string{
			r.Step,
			fmt.Sprintf("%.0f", r.Duration.Seconds()),
			string(r.Status),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Step", "Duration (s)", "Status"})
	table.SetFooter([]string{"Total", fmt.Sprintf("%.0f", durationTotal), string(statusTotal)})
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
}
