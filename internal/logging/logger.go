package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fitstats/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 20
	defaultMaxBackups = 30
	defaultMaxAgeDays = 90
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	// Service is added to every entry, so logs of both binaries can share a sink.
	Service string
	// rotation, zero values use the defaults
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.Service != "" {
		logrus.AddHook(NewFieldsHook(logrus.Fields{
			"service": params.Service,
			"env":     params.Environment,
		}))
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry hook added")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))
	logrus.SetOutput(output(params))
}

func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    orDefault(params.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(params.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(params.MaxAgeDays, defaultMaxAgeDays),
		LocalTime:  false, // UTC
		Compress:   true,
	}

	if !params.LogToStdout {
		return rotating
	}
	logrus.Println("writing logs to file and STDOUT")
	return pkg.NewCombinedWriter(os.Stdout, rotating)
}

// GetLevel parses level case-insensitively; unknown levels mean info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}

// FieldsHook adds fixed fields to every entry that does not set them already.
type FieldsHook struct {
	fields logrus.Fields
}

func NewFieldsHook(fields logrus.Fields) *FieldsHook {
	return &FieldsHook{fields: fields}
}

func (h *FieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *FieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
