package daylog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"daylog/internal/app"
	"daylog/internal/config"
	"daylog/internal/model"
	"daylog/internal/store"
)

var (
	configPath string
	dataPath   string
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "daylog tracks daily measurements from your terminal",
	Long:  "daylog is a local-first daily tracker for weight, fasting, food, sleep, mood, chores, homework and more, with derived trend and summary reports.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to data file (overrides config)")
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		defaultPath, err := app.DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}
	return cfg, nil
}

// session holds the loaded document and routes every commit through the
// debounced writer so multi-mutation commands coalesce into one write.
type session struct {
	store  *store.Store
	writer *store.DebouncedWriter
	doc    *model.Document
}

func (s *session) commit(doc *model.Document) {
	s.doc = doc
	s.writer.Notify(doc)
}

func withSession(run func(*session) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	st := store.New(cfg.Storage.Path, logger)
	doc, err := st.Load()
	if err != nil {
		return err
	}
	sess := &session{
		store:  st,
		writer: store.NewDebouncedWriter(st, cfg.AutosaveDelay(), logger),
		doc:    doc,
	}
	runErr := run(sess)
	if flushErr := sess.writer.Close(); flushErr != nil && runErr == nil {
		runErr = flushErr
	}
	return runErr
}
