package backup

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat reports a snapshot that is not a record at all.
	ErrInvalidFormat = errors.New("backup has an invalid format")

	// ErrEmptyBackup reports a snapshot carrying neither transactions
	// nor settings.
	ErrEmptyBackup = errors.New("backup contains no data")

	// ErrImportCancelled reports that the caller cancelled the import
	// while the file was being read.
	ErrImportCancelled = errors.New("import cancelled")
)

// MalformedTransactionError reports a transaction entry missing one of
// the required id, type, or amount fields. The index is zero-based.
type MalformedTransactionError struct {
	Index int
}

func (e *MalformedTransactionError) Error() string {
	return fmt.Sprintf("transaction %d has incomplete data", e.Index+1)
}

// CorruptArchiveError reports raw archive bytes that no decode path
// could turn into a structurally valid snapshot.
type CorruptArchiveError struct {
	Err error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("backup archive is invalid or corrupt: %v", e.Err)
}

func (e *CorruptArchiveError) Unwrap() error { return e.Err }

// FileReadError reports a failure reading the backup file from the
// host environment.
type FileReadError struct {
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read backup file: %v", e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// PartialImportError reports an import that wrote the transactions
// collection but then failed to write settings, leaving the store in a
// mixed state the caller must resolve.
type PartialImportError struct {
	Err error
}

func (e *PartialImportError) Error() string {
	return fmt.Sprintf("transactions imported but settings write failed: %v", e.Err)
}

func (e *PartialImportError) Unwrap() error { return e.Err }
