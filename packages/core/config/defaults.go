package config

// ThreadListener verifies that tests leave no threads running.
const ThreadListener = "crl.threadverify.ThreadListener"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Robot:      []string{"robot"},
		TargetsDir: "targets",
		OutputDir:  "",
		DebugFile:  "debug.txt",
		LogLevel:   "TRACE:INFO",
		Listeners:  []string{ThreadListener},
		PythonPath: BoolPtr(true),
		NoColor:    BoolPtr(false),
	}
}
