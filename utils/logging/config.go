// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig configures the log files written by a factory's
// loggers. Rotation is size-based and handled by lumberjack.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"`  // in megabytes
	MaxFiles  int    `json:"maxFiles"` // in rotations
	MaxAge    int    `json:"maxAge"`   // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

type Config struct {
	RotatingWriterConfig

	// DisableWriterDisplaying disables the stdout copy of every log line.
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	MsgPrefix               string `json:"-"`
	LoggerName              string `json:"-"`
}

// DefaultConfig keeps a week of logs at debug verbosity in [dir].
func DefaultConfig(dir string) Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:   8,
			MaxFiles:  7,
			MaxAge:    7,
			Directory: dir,
		},
		LogLevel:     Debug,
		DisplayLevel: Info,
	}
}
