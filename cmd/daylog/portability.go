package daylog

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exportOut string
	importIn  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full document to a JSON backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := backupPath(exportOut)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			if err := s.store.Export(s.doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", s.doc.EntryCount(), path)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the current document with a sanitized JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, err := s.store.Import(importIn)
			if err != nil {
				return err
			}
			// An import replaces everything; persist immediately instead of
			// waiting out the autosave delay.
			if err := s.store.Save(doc); err != nil {
				return err
			}
			s.doc = doc
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", doc.EntryCount(), importIn)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Destination file (default: export dir with a dated name)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Source JSON file")
	importCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd, importCmd)
}
