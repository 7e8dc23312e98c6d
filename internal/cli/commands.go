package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/store"
	"github.com/idilsaglam/listmanager/internal/ui"
)

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Print the seed items, newest first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := a.loadSeed()
			if err != nil {
				return err
			}

			// Run the seed through a store so missing IDs and timestamps
			// are filled the same way the interactive screen fills them.
			s := a.newStore(store.Latency{})
			if err := s.Load(cmd.Context(), seed); err != nil {
				return fmt.Errorf("load: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(model.Newest(s.Items()), time.Now())))
			return nil
		},
	}
}

func listLines(items []model.Item, now time.Time) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s", t.Title.Render("List Manager"), t.Muted.Render(fmt.Sprintf("%d items", len(items)))),
		"",
	}
	if len(items) == 0 {
		return append(lines, t.Muted.Render("No items yet."))
	}
	for i, it := range items {
		title := ui.Truncate(ui.OneLine(it.Title), 60)
		subtitle := ui.Truncate(ui.OneLine(it.Subtitle), 60)
		lines = append(lines,
			fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), ui.RowTitle(title, i, len(items))),
			fmt.Sprintf("    %s %s", subtitle, t.Muted.Render("· "+ui.RelativeTime(it.CreatedAt, now))),
		)
	}
	return lines
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <title> <subtitle>",
		Short: "Check a title and subtitle against the form rules",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe := model.Validate(args[0], args[1])
			if fe.Valid() {
				ui.OK(cmd.OutOrStdout(), "valid")
				return nil
			}
			for _, msg := range fe.Messages() {
				ui.Fail(cmd.ErrOrStderr(), msg)
			}
			return &codeError{code: codeUsage}
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "listmanager", Version)
		},
	}
}
