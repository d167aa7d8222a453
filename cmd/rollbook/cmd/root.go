package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/config"
	"github.com/ssharma/rollbook/pkg/creds"
	"github.com/ssharma/rollbook/pkg/maint"
	"github.com/ssharma/rollbook/pkg/query"
	"github.com/ssharma/rollbook/pkg/store"
)

var (
	cfg         *config.Config
	recordStore *store.RecordStore
	credStore   *creds.CredentialStore
	engine      *query.Engine
	manager     *maint.Manager
	log         Logger

	flagConfig  string
	flagDataDir string
	flagVerbose bool
	flagDebug   bool
	flagYes     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rollbook",
	Short: "Rollbook - terminal student record keeper",
	Long: `Rollbook is a single-user terminal record keeper for student academic
data. Records live in a plain delimited text file; credentials, backups and
export artifacts live alongside it in the data directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = Logger{Verbose: flagVerbose, Debug: flagDebug}

		configPath := flagConfig
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		var err error
		cfg, err = config.BootstrapConfig(configPath, flagDataDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		log.Debugf("using data dir %s", cfg.DataDir)

		recordStore = store.NewRecordStore(store.Config{Path: cfg.RecordPath()})
		credStore = creds.NewCredentialStore(creds.Config{Path: cfg.CredentialPath()})
		engine = query.NewEngine(recordStore)
		manager = maint.NewManager(maint.Config{
			RecordPath: cfg.RecordPath(),
			BackupPath: cfg.BackupPath(),
			CSVPath:    cfg.CSVPath(),
			ReportPath: cfg.ReportPath(),
		})

		// First run seeds the five default accounts.
		if err := credStore.EnsureDefaults(); err != nil {
			return fmt.Errorf("failed to seed default credentials: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory override")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show info output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes for confirmation prompts")
}

// activeSession loads the saved session for this data directory.
func activeSession() (*creds.Session, error) {
	return creds.LoadSession(cfg.SessionPath())
}

// requireRecordManager returns the active session if its role may mutate
// student records.
func requireRecordManager() (*creds.Session, error) {
	session, err := activeSession()
	if err != nil {
		return nil, err
	}
	if !session.Role.CanManageRecords() {
		return nil, fmt.Errorf("permission denied: only ADMIN and STAFF can modify records")
	}
	return session, nil
}

// requireAdmin returns the active session if its role is ADMIN.
func requireAdmin() (*creds.Session, error) {
	session, err := activeSession()
	if err != nil {
		return nil, err
	}
	if !session.Role.CanAdminister() {
		return nil, fmt.Errorf("permission denied: only ADMIN can perform this operation")
	}
	return session, nil
}
