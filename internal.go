package eventlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Station-Manager/config"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultSinkName = "eventlog"

// FileSinkConfig configures a rolling log file.
type FileSinkConfig struct {
	// Filename is the path of the active log file.
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewRollingFileSink writes JSON lines to a size-rotated file.
func NewRollingFileSink(cfg FileSinkConfig) *ZerologSink {
	fw := newRollingFile(cfg)
	return newZerologSink(zerolog.New(fw), fw)
}

func newRollingFile(cfg FileSinkConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		MaxSize:    cfg.MaxSizeMB,
	}
}

// NewSinkFromLoggingConfig builds a sink from a Station-Manager logging
// config. The rolling file is written to
// <workingDir>/<RelLogFileDir>/<name>.log. When neither console nor file
// logging is enabled, file logging is used.
func NewSinkFromLoggingConfig(workingDir, name string, cfg *types.LoggingConfig) (*ZerologSink, error) {
	const op errors.Op = "eventlog.NewSinkFromLoggingConfig"
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgSinkLevel)
	}

	fileLogging := cfg.FileLogging || !cfg.ConsoleLogging
	var writers []io.Writer
	var fileWriter *lumberjack.Logger
	if fileLogging {
		dir := filepath.Join(workingDir, cfg.RelLogFileDir)
		if err = os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
		}
		if name == emptyString {
			name = defaultSinkName
		}
		fileWriter = newRollingFile(FileSinkConfig{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSizeMB:  cfg.LogFileMaxSizeMB,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAgeDays: cfg.LogFileMaxAgeDays,
		})
		writers = append(writers, fileWriter)
	}
	if cfg.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level)
	if cfg.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if cfg.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(cfg.SkipFrameCount).Logger()
	}

	if fileWriter == nil {
		return newZerologSink(logger, nil), nil
	}
	return newZerologSink(logger, fileWriter), nil
}

// NewSinkFromConfigService builds a sink from the logging section of a
// Station-Manager config service.
func NewSinkFromConfigService(workingDir, name string, svc *config.Service) (*ZerologSink, error) {
	const op errors.Op = "eventlog.NewSinkFromConfigService"
	if svc == nil {
		return nil, errors.New(op).Msg(errMsgNilConfigService)
	}
	cfg := svc.AppConfig.LoggingConfig
	return NewSinkFromLoggingConfig(workingDir, name, &cfg)
}
