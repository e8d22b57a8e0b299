package fdir

// PackOptions controls which files Pack encodes.
type PackOptions struct {
	// Include limits packing to relative paths matching at least one glob.
	// Patterns use "/" as separator: "*" stays within a directory and "**"
	// crosses directories. Empty means every file.
	Include []string

	// Exclude drops relative paths matching any glob. Exclude wins over Include.
	Exclude []string

	// Progress, if set, is called after each record with the content bytes
	// written so far and the total content size of the selected files.
	Progress func(current, total int64)
}

// PackOption configures a single Pack call.
type PackOption func(*PackOptions)

// WithInclude adds include patterns.
func WithInclude(patterns ...string) PackOption {
	return func(o *PackOptions) {
		o.Include = append(o.Include, patterns...)
	}
}

// WithExclude adds exclude patterns.
func WithExclude(patterns ...string) PackOption {
	return func(o *PackOptions) {
		o.Exclude = append(o.Exclude, patterns...)
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn func(current, total int64)) PackOption {
	return func(o *PackOptions) {
		o.Progress = fn
	}
}

// UnpackOptions controls extraction behavior and limits.
type UnpackOptions struct {
	// MaxFiles is the maximum number of records extracted. 0 means unlimited.
	MaxFiles int

	// MaxFileSize is the maximum content size of any one record.
	// 0 means unlimited.
	MaxFileSize int64

	// MaxTotalSize is the maximum combined content size of extracted records.
	// 0 means unlimited.
	MaxTotalSize int64

	// FilesToExtract specifies glob patterns for selective extraction.
	// When non-empty, only records whose path matches at least one pattern
	// are written; the rest are still decoded and then skipped.
	//   - *.json: .json files at the top level
	//   - config/*: files directly in config
	//   - data/**.txt: .txt files anywhere under data
	FilesToExtract []string
}

// DefaultUnpackOptions extracts everything with no limits.
var DefaultUnpackOptions = UnpackOptions{}

// UnpackOption configures a single Unpack call.
type UnpackOption func(*UnpackOptions)

// WithFilesToExtract restricts extraction to matching record paths.
func WithFilesToExtract(patterns ...string) UnpackOption {
	return func(o *UnpackOptions) {
		o.FilesToExtract = append(o.FilesToExtract, patterns...)
	}
}

// WithMaxFiles limits the number of extracted records.
func WithMaxFiles(n int) UnpackOption {
	return func(o *UnpackOptions) {
		o.MaxFiles = n
	}
}

// WithMaxFileSize limits the size of each extracted record.
func WithMaxFileSize(n int64) UnpackOption {
	return func(o *UnpackOptions) {
		o.MaxFileSize = n
	}
}

// WithMaxTotalSize limits the combined size of extracted records.
func WithMaxTotalSize(n int64) UnpackOption {
	return func(o *UnpackOptions) {
		o.MaxTotalSize = n
	}
}
