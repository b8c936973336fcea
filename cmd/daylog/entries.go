package daylog

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daylog/internal/dates"
	"daylog/internal/model"
	"daylog/internal/service"
	"daylog/internal/store"
)

var (
	rmCategory  string
	rmID        string
	clearBefore string
	clearBackup bool
	clearOut    string
)

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove one tracker entry by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(rmCategory)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			doc, found := service.RemoveEntry(s.doc, category, rmID)
			if !found {
				return fmt.Errorf("no %s entry with id %q", category, rmID)
			}
			s.commit(doc)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s entry %s\n", category, rmID)
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete tracker entries (all, or everything before a date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(clearBefore) != "" && !dates.IsDisplayDate(strings.TrimSpace(clearBefore)) {
			return fmt.Errorf("invalid --before date %q (expected MM/DD/YYYY)", clearBefore)
		}
		return withSession(func(s *session) error {
			if clearBackup {
				path, err := backupPath(clearOut)
				if err != nil {
					return err
				}
				snapshot := s.doc
				if strings.TrimSpace(clearBefore) != "" {
					snapshot = service.SnapshotBefore(s.doc, clearBefore)
				}
				if err := s.store.Export(snapshot, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up to %s\n", path)
			}

			var doc *model.Document
			var removed int
			if strings.TrimSpace(clearBefore) != "" {
				doc, removed = service.ClearEntriesBefore(s.doc, clearBefore)
			} else {
				doc, removed = service.ClearAllEntries(s.doc)
			}
			if removed > 0 {
				s.commit(doc)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)
			return nil
		})
	},
}

func backupPath(out string) (string, error) {
	if strings.TrimSpace(out) != "" {
		return out, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Export.Dir, store.DefaultExportName(time.Now())), nil
}

func parseCategory(s string) (model.Category, error) {
	category := model.Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range model.Categories {
		if c == category {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func init() {
	rmCmd.Flags().StringVar(&rmCategory, "category", "", "Tracker category")
	_ = rmCmd.MarkFlagRequired("category")
	rmCmd.Flags().StringVar(&rmID, "id", "", "Entry id")
	_ = rmCmd.MarkFlagRequired("id")

	clearCmd.Flags().StringVar(&clearBefore, "before", "", "Remove entries strictly earlier than this MM/DD/YYYY date")
	clearCmd.Flags().BoolVar(&clearBackup, "backup", false, "Export the entries being removed first")
	clearCmd.Flags().StringVar(&clearOut, "out", "", "Backup file path (default export dir)")

	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
}
