package config

// EditorConfig holds editing settings.
type EditorConfig struct {
	// TabWidth is the number of spaces the Tab key inserts.
	TabWidth int `toml:"tabWidth"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name ("debug", "info", "warn", ...).
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging, since the
	// terminal belongs to the editor.
	File string `toml:"file"`
}
