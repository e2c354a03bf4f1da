// Package config loads pine's settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PINE_TAB_WIDTH, PINE_LOG_LEVEL, PINE_LOG_FILE
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← $PINE_CONFIG or <config dir>/pine/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// The settings file is optional:
//
//	[editor]
//	tabWidth = 4
//
//	[log]
//	level = "info"
//	file = ""
//
// # Basic Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // cfg holds the defaults; report err and carry on
//	}
//	fmt.Println(cfg.Editor.TabWidth)
//
// # Error Handling
//
//   - *loader.ParseError: the settings file is not valid TOML
//   - *loader.EnvError: PINE_TAB_WIDTH is not an integer
//   - *ValidationError: a value is out of range (matches ErrValidationFailed)
package config
