package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	listCmd.Flags().BoolP("json", "j", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
}

type probeEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Library     config.Library `json:"library"`
	Marker      string         `json:"marker,omitempty"`
	Diagnostics string         `json:"diagnostics"`
	Guarded     bool           `json:"guarded"`
	Binary      string         `json:"binary,omitempty"`
}

func newProbeEntry(p *config.Probe) probeEntry {
	binary, _ := locateProbeBinary(p.Name)
	return probeEntry{
		Name:        p.Name,
		Description: p.Description,
		Library:     p.Library(),
		Marker:      p.Marker,
		Diagnostics: p.DiagnosticStream(),
		Guarded:     !p.Unguarded,
		Binary:      binary,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List probes",
	Long:  "This command lists all configured probe variants.",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			entries := make([]probeEntry, 0, len(catalog.Probes))
			for _, name := range catalog.Names() {
				p, _ := catalog.Lookup(name)
				entries = append(entries, newProbeEntry(p))
			}
			return printJSON(cmd.OutOrStdout(), entries)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, "The following probes are configured:\n\n")

		for _, name := range catalog.Names() {
			p, _ := catalog.Lookup(name)
			fmt.Fprintln(out, styleListItem.Render(probeLine(p)))
		}

		fmt.Fprintln(out, styleInfoBox.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				"To inspect or execute one of these probes, you can use the following commands:",
				styleCommandBlock.Render(lipgloss.JoinVertical(lipgloss.Left,
					styleCommand.Render(cmd.Root().CommandPath()+" show")+styleParam.Render(" <probe>"),
					styleCommand.Render(cmd.Root().CommandPath()+" run")+styleParam.Render(" <probe>"),
				)),
			),
		))

		return nil
	},
}
