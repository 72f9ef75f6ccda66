package cachesweep

const (
	// DefaultMaxDepth is the default depth bound of the tree report.
	DefaultMaxDepth = 3
	// DefaultStaleMonths is the default age threshold in months.
	DefaultStaleMonths = 12
)

// Options configures cache analysis and CLI behavior.
type Options struct {
	// Directories are the cache directories to analyze (empty = platform defaults).
	Directories []string
	// MaxDepth bounds the recursion of the tree report.
	MaxDepth int
	// StaleMonths is the number of 30-day months after which an entry counts as old.
	StaleMonths int
	// MinSize is the minimum size in bytes for an old entry to be offered for deletion.
	MinSize int64
	// DryRun reports old entries without prompting or deleting.
	DryRun bool
	// Output represents the dry-run output format (table or json).
	Output string
	// Debug indicates whether debug logging is enabled.
	Debug bool
	// LogFile, when set, receives log output instead of stderr.
	LogFile string
	// ConfigFile is an explicit configuration file path.
	ConfigFile string
	// Version indicates whether to show version and exit.
	Version bool
	// Init indicates whether to output a starter configuration file.
	Init bool
	// PrintConfig indicates whether to output the effective configuration.
	PrintConfig bool
}

// Defaults returns Options populated with the default thresholds.
func Defaults() Options {
	return Options{
		MaxDepth:    DefaultMaxDepth,
		StaleMonths: DefaultStaleMonths,
		Output:      "table",
	}
}
