package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the project configuration file looked up in the working
	// directory
	ConfigFile = "sqlkit.yaml"

	// DefaultDocumentsDir is where query documents live when the config does
	// not say otherwise
	DefaultDocumentsDir = "queries"

	// DocumentPattern matches query document files within a directory
	DocumentPattern = "*.yaml"
)
