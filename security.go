package fdir

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/internal/validate"
)

// Validator checks a record before Unpack writes it.
type Validator interface {
	// ValidatePath checks that a record path is safe to extract.
	ValidatePath(path string) error

	// ValidateFile checks a single record.
	ValidateFile(info FileInfo) error

	// ValidateArchive checks running totals after a record is accepted.
	ValidateArchive(stats ArchiveStats) error
}

// FileInfo describes a record under validation.
type FileInfo struct {
	// Name is the record path.
	Name string
	// Size is the content length in bytes.
	Size int64
}

// ArchiveStats are the running totals of extracted records.
type ArchiveStats struct {
	TotalFiles int
	TotalSize  int64
}

// PathValidator rejects absolute paths, traversal and control characters.
type PathValidator struct {
	pv *validate.PathValidator
}

// NewPathValidator creates a PathValidator that accepts hidden files.
func NewPathValidator() *PathValidator {
	return &PathValidator{pv: validate.NewPathValidator()}
}

// ValidatePath checks path.
func (v *PathValidator) ValidatePath(path string) error {
	return v.pv.ValidatePath(path)
}

// ValidateFile is a no-op.
func (v *PathValidator) ValidateFile(FileInfo) error { return nil }

// ValidateArchive is a no-op.
func (v *PathValidator) ValidateArchive(ArchiveStats) error { return nil }

// SizeValidator enforces per-record and total size limits.
// A zero limit disables that check.
type SizeValidator struct {
	MaxFileSize  int64
	MaxTotalSize int64
}

// NewSizeValidator creates a new SizeValidator with the specified limits.
func NewSizeValidator(maxFileSize, maxTotalSize int64) *SizeValidator {
	return &SizeValidator{MaxFileSize: maxFileSize, MaxTotalSize: maxTotalSize}
}

// ValidatePath is a no-op.
func (v *SizeValidator) ValidatePath(string) error { return nil }

// ValidateFile checks the record size against MaxFileSize.
func (v *SizeValidator) ValidateFile(info FileInfo) error {
	if v.MaxFileSize > 0 && info.Size > v.MaxFileSize {
		return errors.WithContextMap(
			errors.New(errors.CodeSecurityViolation, "file size limit exceeded"),
			map[string]interface{}{"path": info.Name, "size": info.Size, "limit": v.MaxFileSize},
		)
	}
	return nil
}

// ValidateArchive checks the running total against MaxTotalSize.
func (v *SizeValidator) ValidateArchive(stats ArchiveStats) error {
	if v.MaxTotalSize > 0 && stats.TotalSize > v.MaxTotalSize {
		return errors.WithContextMap(
			errors.New(errors.CodeSecurityViolation, "total size limit exceeded"),
			map[string]interface{}{"size": stats.TotalSize, "limit": v.MaxTotalSize},
		)
	}
	return nil
}

// FileCountValidator limits the number of extracted records.
// Zero disables the check.
type FileCountValidator struct {
	MaxFiles int
}

// NewFileCountValidator creates a new FileCountValidator with the specified limit.
func NewFileCountValidator(maxFiles int) *FileCountValidator {
	return &FileCountValidator{MaxFiles: maxFiles}
}

// ValidatePath is a no-op.
func (v *FileCountValidator) ValidatePath(string) error { return nil }

// ValidateFile is a no-op.
func (v *FileCountValidator) ValidateFile(FileInfo) error { return nil }

// ValidateArchive checks the running record count.
func (v *FileCountValidator) ValidateArchive(stats ArchiveStats) error {
	if v.MaxFiles > 0 && stats.TotalFiles > v.MaxFiles {
		return errors.WithContextMap(
			errors.New(errors.CodeSecurityViolation, "file count limit exceeded"),
			map[string]interface{}{"files": stats.TotalFiles, "limit": v.MaxFiles},
		)
	}
	return nil
}

// ValidatorChain runs validators in order and fails fast.
type ValidatorChain struct {
	validators []Validator
}

// NewValidatorChain creates a new ValidatorChain with the specified validators.
func NewValidatorChain(validators ...Validator) *ValidatorChain {
	return &ValidatorChain{validators: validators}
}

// AddValidator adds a validator to the chain.
func (vc *ValidatorChain) AddValidator(validator Validator) {
	vc.validators = append(vc.validators, validator)
}

// ValidatePath runs every ValidatePath in sequence.
func (vc *ValidatorChain) ValidatePath(path string) error {
	for _, validator := range vc.validators {
		if err := validator.ValidatePath(path); err != nil {
			return errors.Wrapf(err, errors.CodeSecurityViolation, "path validation failed for %s", path)
		}
	}
	return nil
}

// ValidateFile runs every ValidateFile in sequence.
func (vc *ValidatorChain) ValidateFile(info FileInfo) error {
	for _, validator := range vc.validators {
		if err := validator.ValidateFile(info); err != nil {
			return errors.Wrapf(err, errors.CodeSecurityViolation, "file validation failed for %s", info.Name)
		}
	}
	return nil
}

// ValidateArchive runs every ValidateArchive in sequence.
func (vc *ValidatorChain) ValidateArchive(stats ArchiveStats) error {
	for _, validator := range vc.validators {
		if err := validator.ValidateArchive(stats); err != nil {
			return errors.Wrapf(err, errors.CodeSecurityViolation,
				"archive validation failed (files: %d, size: %d)", stats.TotalFiles, stats.TotalSize)
		}
	}
	return nil
}

// safeJoin joins member onto targetDir and fails if the result, once made
// absolute, leaves targetDir. The returned path keeps targetDir's form so it
// resolves on non-disk filesystems too.
func safeJoin(targetDir, member string) (string, error) {
	rootAbs, err := filepath.Abs(targetDir)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to resolve output directory")
	}

	fullPath := filepath.Join(targetDir, filepath.FromSlash(member))
	targetAbs, err := filepath.Abs(fullPath)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to resolve target path")
	}
	prefix := rootAbs
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if !strings.HasPrefix(targetAbs, prefix) {
		return "", errors.WithContext(
			errors.New(errors.CodeSecurityViolation, "path escapes output directory"),
			"path", member)
	}
	return fullPath, nil
}
