package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the configuration file looked up in the
	// working directory
	ConfigFile = ".hqlfmt.yaml"

	// HistoryFile is the name of the REPL history file inside the user cache
	// directory
	HistoryFile = "hqlfmt_history"
)

// DefaultExtensions are the file extensions formatted when none are
// configured.
var DefaultExtensions = []string{".sql", ".hql"}
