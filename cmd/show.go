package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/internal/native"
	"github.com/spf13/cobra"
)

func init() {
	showCmd.Flags().BoolP("json", "j", false, "output as JSON")

	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:        "show <probe>",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"probe"},
	Short:      "Show probe settings",
	Long:       "This command shows the settings of one probe variant and where its binary was found.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupProbe(args[0])
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), struct {
				probeEntry
				Settings interface{} `json:"settings"`
			}{newProbeEntry(p), librarySettings(p)})
		}

		entry := newProbeEntry(p)
		lines := []string{
			detailLine("library:", styleHighlight.Render(string(entry.Library))),
			detailLine("description:", wrapNotSet(entry.Description)),
			detailLine("success marker:", wrapNotSet(entry.Marker)),
			detailLine("diagnostics:", styleHighlight.Render(entry.Diagnostics)),
			detailLine("fault boundary:", styleHighlight.Render(strconv.FormatBool(entry.Guarded))),
			detailLine("install root:", styleHighlight.Render(native.InstallRoot)),
			detailLine("binary:", wrapNotSet(entry.Binary)),
		}
		lines = append(lines, settingLines(p)...)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styleListItem.Render(probeLine(p)))
		fmt.Fprintln(out, styleDetails.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		return nil
	},
}

func librarySettings(p *config.Probe) interface{} {
	switch p.Library() {
	case config.LibraryGenDC:
		return p.GenDC
	case config.LibraryIonKit:
		return p.IonKit
	case config.LibraryOpenCV:
		return p.OpenCV
	}
	return struct{}{}
}

func settingLines(p *config.Probe) []string {
	switch {
	case p.GenDC != nil:
		return []string{
			detailLine("pixel format:", withDefault(p.GenDC.PixelFormat, config.DefaultPixelFormat)),
			detailLine("invalid content:", withDefault(p.GenDC.InvalidContent, config.DefaultInvalidContent)),
		}
	case p.IonKit != nil:
		return []string{
			detailLine("host target:", withDefault(p.IonKit.HostTarget, config.DefaultHostTarget)),
			detailLine("target:", wrapNotSet(p.IonKit.Target)),
			detailLine("bb module:", withDefault(p.IonKit.BBModule, config.DefaultBBModule)),
		}
	case p.OpenCV != nil && p.OpenCV.RequireGStreamer:
		return []string{detailLine("requires:", styleHighlight.Render("GStreamer"))}
	case p.OpenCV != nil:
		return []string{
			detailLine("rows:", withDefault(dimension(p.OpenCV.Rows), strconv.Itoa(config.DefaultMatDimension))),
			detailLine("cols:", withDefault(dimension(p.OpenCV.Cols), strconv.Itoa(config.DefaultMatDimension))),
			detailLine("matrix type:", withDefault(p.OpenCV.MatType, config.DefaultMatType)),
		}
	}
	return nil
}

func dimension(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
