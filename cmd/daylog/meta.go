package daylog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daylog/internal/model"
	"daylog/internal/service"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Manage lookup lists (workouts, subjects, children, chores, substances, entertainment)",
}

var metaListCmd = &cobra.Command{
	Use:   "list <list>",
	Short: "Show the items in a lookup list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := parseMetaList(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			items := s.doc.Meta.MetaItems(list)
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s items yet\n", list)
				return nil
			}
			for _, item := range items {
				uses := service.UsageCount(s.doc, list, item.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d uses)\n", item.ID, item.Name, uses)
			}
			return nil
		})
	},
}

var metaAddCmd = &cobra.Command{
	Use:   "add <list> <name>",
	Short: "Add an item to a lookup list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := parseMetaList(args[0])
		if err != nil {
			return err
		}
		name := strings.Join(args[1:], " ")
		return withSession(func(s *session) error {
			doc, id, err := service.AddMetaItem(s.doc, list, name)
			if err != nil {
				return err
			}
			s.commit(doc)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s item %s\n", list, id)
			return nil
		})
	},
}

var metaRenameCmd = &cobra.Command{
	Use:   "rename <list> <id> <new name>",
	Short: "Rename a lookup list item",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := parseMetaList(args[0])
		if err != nil {
			return err
		}
		id := args[1]
		name := strings.Join(args[2:], " ")
		return withSession(func(s *session) error {
			doc, err := service.RenameMetaItem(s.doc, list, id, name)
			if err != nil {
				return err
			}
			if doc != s.doc {
				s.commit(doc)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s item %s\n", list, id)
			return nil
		})
	},
}

var metaRmCmd = &cobra.Command{
	Use:   "rm <list> <id>",
	Short: "Remove a lookup list item (refused while entries reference it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := parseMetaList(args[0])
		if err != nil {
			return err
		}
		id := args[1]
		return withSession(func(s *session) error {
			doc, err := service.RemoveMetaItem(s.doc, list, id)
			if errors.Is(err, service.ErrMetaInUse) {
				return fmt.Errorf("%v; remove the referencing entries first", err)
			}
			if err != nil {
				return err
			}
			s.commit(doc)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s item %s\n", list, id)
			return nil
		})
	},
}

func parseMetaList(s string) (model.MetaList, error) {
	list := model.MetaList(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range model.MetaLists {
		if l == list {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown meta list %q", s)
}

func init() {
	metaCmd.AddCommand(metaListCmd)
	metaCmd.AddCommand(metaAddCmd)
	metaCmd.AddCommand(metaRenameCmd)
	metaCmd.AddCommand(metaRmCmd)
	rootCmd.AddCommand(metaCmd)
}
