package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cuentasclaras/backend/internal/metrics"
	"github.com/cuentasclaras/backend/internal/models"
	"github.com/cuentasclaras/backend/internal/storage"
)

// Service assembles snapshots from the store on export and writes them
// back on import.
type Service struct {
	store storage.Store
	codec *Codec
}

// NewService creates a backup service stamping archives with appName.
func NewService(store storage.Store, appName string) *Service {
	return &Service{store: store, codec: NewCodec(appName)}
}

// Codec exposes the underlying codec, mainly so tests can pin its
// clock.
func (s *Service) Codec() *Codec {
	return s.codec
}

// Export reads the full data set from the store and returns the
// archive bytes. Accounts and categories live inside settings in the
// store; the archive format carries them at the top level as well.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	settings, err := s.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	snap := Snapshot{Transactions: txs}
	if !settings.IsZero() {
		snap.Settings = &settings
	}
	if !settings.Categories.Empty() {
		categories := settings.Categories
		snap.Categories = &categories
	}
	snap.Accounts = settings.Accounts

	out, err := s.codec.EncodeJSON(snap)
	if err != nil {
		return nil, err
	}

	slog.Info("backup exported", "transactions", len(txs), "bytes", len(out))
	metrics.BackupsExported.Inc()
	return out, nil
}

// Import reads archive bytes from r, decodes and validates them, and
// replaces the store's transactions and settings. The snapshot is
// fully decoded and validated before anything is written; a settings
// write that fails after the transactions write succeeded surfaces as
// a PartialImportError. Cancellation of ctx during the read maps to
// ErrImportCancelled.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		metrics.ImportFailures.Inc()
		if ctx.Err() != nil {
			return nil, ErrImportCancelled
		}
		return nil, &FileReadError{Err: err}
	}
	if ctx.Err() != nil {
		metrics.ImportFailures.Inc()
		return nil, ErrImportCancelled
	}

	snap, err := Decode(raw)
	if err != nil {
		metrics.ImportFailures.Inc()
		return nil, err
	}
	if err := Validate(snap); err != nil {
		metrics.ImportFailures.Inc()
		return nil, err
	}

	settings := mergeSettings(snap)

	if snap.Transactions != nil {
		if err := s.store.SaveTransactions(ctx, snap.Transactions); err != nil {
			metrics.ImportFailures.Inc()
			return nil, fmt.Errorf("failed to import transactions: %w", err)
		}
	}
	if settings != nil {
		if err := s.store.SaveSettings(ctx, *settings); err != nil {
			metrics.ImportFailures.Inc()
			if snap.Transactions != nil {
				return nil, &PartialImportError{Err: err}
			}
			return nil, fmt.Errorf("failed to import settings: %w", err)
		}
	}

	slog.Info("backup imported", "transactions", len(snap.Transactions))
	metrics.BackupsImported.Inc()
	return snap, nil
}

// mergeSettings folds the archive's top-level accounts and categories
// back into the settings record, undoing the lift Export performs.
func mergeSettings(snap *Snapshot) *models.Settings {
	if snap.Settings == nil && snap.Categories == nil && len(snap.Accounts) == 0 {
		return nil
	}

	var settings models.Settings
	if snap.Settings != nil {
		settings = *snap.Settings
	}
	if snap.Categories != nil && settings.Categories.Empty() {
		settings.Categories = *snap.Categories
	}
	if len(settings.Accounts) == 0 && len(snap.Accounts) > 0 {
		settings.Accounts = snap.Accounts
	}
	return &settings
}

// Peek decodes archive metadata without touching the store; it returns
// nil for unrecognizable bytes.
func (s *Service) Peek(raw []byte) *Info {
	return ReadInfo(raw)
}
