// Package backup implements the versioned, compressed archive format
// used for full data export and import (.ccbackup / .json files).
//
// The current (v2) archive is a JSON wrapper holding metadata plus a
// compressed snapshot blob. Legacy (v1) archives carry the snapshot
// fields uncompressed at the top level and remain importable; export
// always writes v2.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cuentasclaras/backend/internal/models"
)

// FormatVersion is the archive version stamped on every export.
const FormatVersion = "2.0"

// Snapshot is the archive payload: the full application data set.
type Snapshot struct {
	Version      string               `json:"version,omitempty"`
	ExportDate   string               `json:"exportDate,omitempty"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	Settings     *models.Settings     `json:"settings,omitempty"`
	Categories   *models.Categories   `json:"categories,omitempty"`
	Accounts     []models.Account     `json:"accounts,omitempty"`
}

// Metadata describes an archive without decoding its payload.
type Metadata struct {
	AppName          string `json:"appName"`
	Version          string `json:"version"`
	ExportDate       string `json:"exportDate"`
	CompressionRatio string `json:"compressionRatio"`
}

// Archive is the v2 on-disk form: metadata plus the base64 compressed
// snapshot.
type Archive struct {
	Metadata Metadata `json:"metadata"`
	Data     string   `json:"data"`
}

// Codec encodes snapshots into archives. The clock is injectable so
// encoding stays deterministic under test.
type Codec struct {
	AppName string
	Now     func() time.Time
}

// NewCodec creates a Codec stamping archives with the given app name.
func NewCodec(appName string) *Codec {
	return &Codec{AppName: appName, Now: time.Now}
}

// Clean canonicalizes a snapshot for export: it stamps the version and
// export date, drops per-transaction createdAt fields that duplicate
// the transaction date, and drops empty collections entirely.
func Clean(snap Snapshot, now time.Time) Snapshot {
	out := Snapshot{
		Version:    FormatVersion,
		ExportDate: now.UTC().Format(time.RFC3339),
	}

	if len(snap.Transactions) > 0 {
		out.Transactions = make([]models.Transaction, len(snap.Transactions))
		for i, t := range snap.Transactions {
			if t.CreatedAt == t.Date {
				t.CreatedAt = ""
			}
			out.Transactions[i] = t
		}
	}
	if snap.Settings != nil && !snap.Settings.IsZero() {
		out.Settings = snap.Settings
	}
	if snap.Categories != nil && !snap.Categories.Empty() {
		out.Categories = snap.Categories
	}
	if len(snap.Accounts) > 0 {
		out.Accounts = snap.Accounts
	}
	return out
}

// Encode cleans the snapshot, compresses it, and wraps it in a v2
// archive. The compression ratio compares the JSON text against the
// base64 blob, reported as a percentage with one decimal.
func (c *Codec) Encode(snap Snapshot) (*Archive, error) {
	clean := Clean(snap, c.Now())

	payload, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	blob, err := compress(payload)
	if err != nil {
		return nil, err
	}

	ratio := (1 - float64(len(blob))/float64(len(payload))) * 100
	return &Archive{
		Metadata: Metadata{
			AppName:          c.AppName,
			Version:          FormatVersion,
			ExportDate:       clean.ExportDate,
			CompressionRatio: fmt.Sprintf("%.1f%%", ratio),
		},
		Data: blob,
	}, nil
}

// EncodeJSON encodes the snapshot and marshals the archive to its
// on-disk JSON form.
func (c *Codec) EncodeJSON(snap Snapshot) ([]byte, error) {
	archive, err := c.Encode(snap)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(archive)
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}
	return out, nil
}

// Decode parses raw archive bytes into a snapshot, accepting three
// shapes in order: a v2 metadata+data wrapper, a legacy v1 snapshot
// with fields at the top level, and finally the bare compressed blob
// (hand-edited or partially wrapped files). Anything else fails with
// CorruptArchiveError. Decode does not validate; run Validate before
// importing the result.
func Decode(raw []byte) (*Snapshot, error) {
	var container map[string]json.RawMessage
	if err := json.Unmarshal(raw, &container); err == nil {
		if data, ok := container["data"]; ok {
			if _, ok := container["metadata"]; ok {
				var blob string
				if err := json.Unmarshal(data, &blob); err != nil {
					return nil, &CorruptArchiveError{Err: err}
				}
				payload, err := decompress(blob)
				if err != nil {
					return nil, &CorruptArchiveError{Err: err}
				}
				return parseSnapshot(payload)
			}
		}
		if _, ok := container["transactions"]; ok {
			return parseSnapshot(raw)
		}
		if _, ok := container["settings"]; ok {
			return parseSnapshot(raw)
		}
	}

	payload, err := decompress(string(raw))
	if err != nil {
		return nil, &CorruptArchiveError{Err: err}
	}
	return parseSnapshot(payload)
}

func parseSnapshot(payload []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, &CorruptArchiveError{Err: err}
	}
	return &snap, nil
}

// Validate is the pre-import gate: the snapshot must be a record, must
// carry transactions or settings, and every transaction must have an
// id, a type, and an amount. A zero amount counts as missing, since
// amounts are always positive. Validate never mutates.
func Validate(snap *Snapshot) error {
	if snap == nil {
		return ErrInvalidFormat
	}
	if snap.Transactions == nil && snap.Settings == nil {
		return ErrEmptyBackup
	}
	for i, t := range snap.Transactions {
		if t.ID == "" || t.Type == "" || t.Amount == 0 {
			return &MalformedTransactionError{Index: i}
		}
	}
	return nil
}

// Info summarizes an archive without importing it.
type Info struct {
	Version          string
	ExportDate       string
	CompressionRatio string
	Compressed       bool
	TransactionCount int
}

// ReadInfo peeks at raw archive bytes and reports what they contain.
// It returns nil when the bytes are not a recognizable archive.
func ReadInfo(raw []byte) *Info {
	var archive Archive
	if err := json.Unmarshal(raw, &archive); err == nil && archive.Metadata.Version != "" {
		return &Info{
			Version:          archive.Metadata.Version,
			ExportDate:       archive.Metadata.ExportDate,
			CompressionRatio: archive.Metadata.CompressionRatio,
			Compressed:       true,
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	if snap.Transactions == nil && snap.Settings == nil {
		return nil
	}
	version := snap.Version
	if version == "" {
		version = "1.0"
	}
	return &Info{
		Version:          version,
		ExportDate:       snap.ExportDate,
		TransactionCount: len(snap.Transactions),
	}
}
