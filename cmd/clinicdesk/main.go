package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinicdesk/internal/backup"
	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/remote"
	"github.com/clinicdesk/clinicdesk/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicdesk",
		Short: "Single-clinic patient management data service",
	}

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(passwdCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger mirrors the usual setup: console output in development, JSON
// otherwise.
func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// app bundles everything a command needs.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *store.Store
	backup *backup.Service
	remote *remote.Client
	worker *remote.Worker
	unsub  func()
	close  func()
}

func openApp() (*app, error) {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(backend, logger)
	if err := st.Initialize(); err != nil {
		backend.Close()
		return nil, err
	}

	svc := backup.NewService(st, logger)
	client := remote.NewClient(backend, remote.Config{
		ClientID:   cfg.DropboxClientID,
		RemotePath: cfg.DropboxRemotePath,
	}, logger)

	a := &app{
		cfg:    cfg,
		log:    logger,
		store:  st,
		backup: svc,
		remote: client,
		unsub:  func() {},
		close:  func() { backend.Close() },
	}

	// Auto-sync: every local mutation queues a best-effort push while a
	// token is stored.
	if cfg.AutoSync {
		a.worker = remote.NewWorker(svc, client, logger)
		a.worker.Start()
		a.unsub = st.Subscribe(a.worker.Notify)
	}
	return a, nil
}

func (a *app) shutdown() {
	a.unsub()
	if a.worker != nil {
		a.worker.Stop()
	}
	a.close()
}

func openBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryBackend(), nil
	case "file":
		return store.NewFileBackend(cfg.DataDir)
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, err
		}
		return store.NewSQLiteBackend(cfg.SQLitePath)
	case "postgres":
		return store.NewPostgresBackend(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the local database and seed the catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			drugs, err := a.store.Drugs()
			if err != nil {
				return err
			}
			exams, err := a.store.Exams()
			if err != nil {
				return err
			}
			diagnoses, err := a.store.Diagnoses()
			if err != nil {
				return err
			}
			fmt.Printf("Store ready (%s backend): %d drugs, %d exams, %d diagnosis labels.\n",
				a.cfg.StoreBackend, len(drugs), len(exams), len(diagnoses))
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full backup bundle to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = fmt.Sprintf("clinicdesk_backup_%s.json", time.Now().Format("2006-01-02"))
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			bundle, err := a.backup.Export()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return err
			}
			fmt.Printf("Backup written to %s (%d patients, %d visits).\n", out, len(bundle.Patients), len(bundle.Visits))
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output file (default clinicdesk_backup_<date>.json)")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore collections from a backup bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			result := a.backup.Import(raw)
			fmt.Println(result.Message)
			if !result.Success {
				return fmt.Errorf("import failed")
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "Backup bundle to import")
	return cmd
}

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage the remote backup mirror",
	}

	connectCmd := &cobra.Command{
		Use:   "connect",
		Short: "Authorize the remote backup and store the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			if a.cfg.DropboxClientID == "" {
				return fmt.Errorf("DROPBOX_CLIENT_ID is not configured")
			}

			origin := "http://" + a.cfg.CallbackAddr
			srv := remote.NewCallbackServer(a.log)
			srv.Start(a.cfg.CallbackAddr)
			defer srv.Shutdown(context.Background())

			fmt.Println("Open this URL in a browser to authorize:")
			fmt.Println("  " + a.remote.AuthorizeURL(origin))

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			token, err := srv.WaitToken(ctx)
			if err != nil {
				return fmt.Errorf("no token received: %w", err)
			}
			if err := a.remote.SaveToken(token); err != nil {
				return err
			}
			fmt.Println("Connected.")

			// A fresh connection pushes the current state right away.
			bundle, err := a.backup.Export()
			if err != nil {
				return err
			}
			if a.remote.Push(cmd.Context(), bundle) {
				fmt.Println("Initial backup pushed.")
			} else {
				fmt.Println("Initial push failed; will retry on the next change.")
			}
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the remote backup connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			if _, ok := a.remote.Token(); ok {
				fmt.Println("Status: connected (auto-sync active)")
			} else {
				fmt.Println("Status: disconnected")
			}
			last, err := a.store.LastModified()
			if err != nil {
				return err
			}
			if last.IsZero() {
				fmt.Println("Last local change: never")
			} else {
				fmt.Printf("Last local change: %s\n", last.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Push a fresh bundle to the remote path now",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			bundle, err := a.backup.Export()
			if err != nil {
				return err
			}
			if !a.remote.Push(cmd.Context(), bundle) {
				return fmt.Errorf("push failed (not connected, or remote unreachable)")
			}
			fmt.Println("Backup pushed.")
			return nil
		},
	}

	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the remote bundle and restore it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			bundle, err := a.remote.Pull(cmd.Context())
			if err != nil {
				return err
			}
			result := a.backup.ImportBundle(bundle)
			fmt.Println(result.Message)
			if !result.Success {
				return fmt.Errorf("restore failed")
			}
			return nil
		},
	}

	disconnectCmd := &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			if err := a.remote.Disconnect(); err != nil {
				return err
			}
			fmt.Println("Disconnected.")
			return nil
		},
	}

	cmd.AddCommand(connectCmd, statusCmd, pushCmd, pullCmd, disconnectCmd)
	return cmd
}

func passwdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Admin passphrase helpers",
	}

	checkCmd := &cobra.Command{
		Use:   "check <candidate>",
		Short: "Check a candidate against the stored passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			if !a.store.CheckPassword(args[0]) {
				return fmt.Errorf("passphrase does not match")
			}
			fmt.Println("OK")
			return nil
		},
	}

	cmd.AddCommand(checkCmd)
	return cmd
}
