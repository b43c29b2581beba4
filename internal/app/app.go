package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"gramgrid/internal/config"
	"gramgrid/internal/encryption"
	"gramgrid/internal/model"
	"gramgrid/internal/store"
	"gramgrid/internal/village"
)

// PassphrasePrompt asks the user for the key passphrase when the store is
// encrypted. It is only invoked when encryption is configured.
type PassphrasePrompt func() (string, error)

// App is the application layer between the CLI and the data layer.
// It constructs all dependencies from config and manages their lifecycle on
// Close. Nothing here is a global: every consumer receives the repository
// and session manager by reference.
type App struct {
	cfg      *config.Config
	store    village.Store
	logFile  *os.File
	Repo     *village.Repository
	Sessions *village.SessionManager
	Hasher   *village.PasswordHasher
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "Login", "Seed") and
// tags every log line. The caller must call Close when done.
func NewApp(cfg *config.Config, operation string, prompt PassphrasePrompt) (*App, error) {
	opID := time.Now().UTC().Format("20060102T150405Z") + "-" + operation
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if cfg.Encryption.Type == "age" {
		codec := encryption.NewAgeCodec(cfg.Encryption)
		if !codec.IsConfigured() {
			closeStore(st)
			logFile.Close()
			return nil, fmt.Errorf("store encryption enabled but keys are missing: run `gramgrid config keys init`")
		}
		if prompt == nil {
			closeStore(st)
			logFile.Close()
			return nil, fmt.Errorf("store encryption enabled but no passphrase prompt available")
		}
		passphrase, err := prompt()
		if err != nil {
			closeStore(st)
			logFile.Close()
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		if err := codec.Unlock(passphrase); err != nil {
			closeStore(st)
			logFile.Close()
			return nil, fmt.Errorf("unlocking store key: %w", err)
		}
		st = store.NewEncryptedStore(st, codec)
	}

	if err := st.ValidateSetup(); err != nil {
		closeStore(st)
		logFile.Close()
		return nil, fmt.Errorf("validating store: %w", err)
	}

	log := &slogAdapter{l: logger}
	clock := village.RealClock{}
	collections := village.NewCollections(st, cfg.KeyPrefix, log)
	repo := village.NewRepository(collections, clock, village.NewRecordIDGenerator(clock), log)
	hasher := village.NewPasswordHasher()
	sessions := village.NewSessionManager(collections, repo, hasher, clock, log,
		time.Duration(cfg.SessionTTLHours)*time.Hour)

	return &App{
		cfg:      cfg,
		store:    st,
		logFile:  logFile,
		Repo:     repo,
		Sessions: sessions,
		Hasher:   hasher,
	}, nil
}

// Initialize seeds an empty store and restores any persisted session.
// Returns the active session, or nil when anonymous. This is the single
// entry point the shell calls at startup.
func (a *App) Initialize() (*model.Session, error) {
	if err := a.Repo.EnsureSeeded(a.Hasher); err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}
	return a.Sessions.Current()
}

// RequireSession returns the active session or an error when anonymous.
// Commands that mutate data call this first.
func (a *App) RequireSession() (*model.Session, error) {
	s, err := a.Sessions.Current()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("not logged in: run `gramgrid login`")
	}
	return s, nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := closeStore(a.store); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}
	return firstErr
}

// closeStore closes backends that hold resources (sqlite); the rest are no-ops.
func closeStore(s village.Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
