package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/twguide/config"
	"github.com/grovetools/twguide/util/pathutil"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// activeConfig, when set, is used instead of discovering twguide.yml.
	activeConfig *config.Config
)

// SetConfig makes subsequent NewLogger calls read their settings from cfg
// rather than discovering twguide.yml themselves. Loggers created earlier
// are discarded so they pick up the new settings.
func SetConfig(cfg *config.Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	activeConfig = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logCfg := loadConfig()

	levelStr := "info"
	if env := os.Getenv("TWGUIDE_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("TWGUIDE_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	logger.SetFormatter(newFormatter(logCfg.Format))

	toStderr := shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel())

	var writers []io.Writer
	if logCfg.File.Enabled {
		if file := openLogFile(logger, component, logCfg.File.Path); file != nil {
			// The formatter is per logger, so the file format only wins
			// when the file is the only sink.
			if logCfg.File.Format == "json" && !toStderr {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}
			writers = append(writers, file)
		}
	}
	if toStderr {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		// Interactive use without a file sink stays quiet.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func loadConfig() Config {
	var logCfg Config
	cfg := activeConfig
	if cfg == nil {
		loaded, err := config.LoadDefault()
		if err != nil {
			return logCfg
		}
		cfg = loaded
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		logrus.Warnf("Failed to parse 'logging' config: %v", err)
	}
	return logCfg
}

func newFormatter(format FormatConfig) logrus.Formatter {
	switch format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		return &TextFormatter{Config: format}
	}
}

// shouldLogToStderr applies the structured_to_stderr mode. In "auto" mode
// logs reach stderr only when debugging or when stderr is not a terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	isDebug := os.Getenv("TWGUIDE_DEBUG") == "1" || level >= logrus.DebugLevel
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return isDebug || !isInteractive
}

func openLogFile(logger *logrus.Logger, component, path string) *os.File {
	if path == "" {
		path = defaultLogPath(component)
	}
	expanded, err := pathutil.Expand(path)
	if err != nil {
		logger.Warnf("Failed to expand log path %s: %v", path, err)
		return nil
	}

	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warnf("Failed to create log directory %s: %v", dir, err)
		return nil
	}
	file, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Warnf("Failed to open log file %s: %v", expanded, err)
		return nil
	}
	return file
}

func defaultLogPath(component string) string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		stateDir = filepath.Join("~", ".local", "state")
	}
	name := fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02"))
	return filepath.Join(stateDir, "twguide", name)
}
