package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

type level struct {
	name  string
	color string
}

var (
	levelInfo  = level{"INFO", "\033[32m"}
	levelWarn  = level{"WARN", "\033[33m"}
	levelError = level{"ERROR", "\033[31m"}
	levelDebug = level{"DEBUG", "\033[34m"}
)

const colorReset = "\033[0m"

const (
	defaultMaxSizeMB  = 10
	defaultMaxAgeDays = 7
)

var (
	lumberjackLogger = &lumberjack.Logger{
		Filename: getLogFilename(),
		MaxSize:  getMaxSize(), // megabytes
		MaxAge:   getMaxAge(),  // days
	}

	logger = log.New(lumberjackLogger, "", log.Ldate|log.Ltime|log.Lmicroseconds)
)

func getLogFilename() string {
	if logFile := os.Getenv("LOGFILE"); logFile != "" {
		return "./logs/" + logFile
	}
	return "./logs/certledger.log"
}

func getMaxSize() int {
	return envInt("LOGFILE_MAX_SIZE_MB", defaultMaxSizeMB)
}

func getMaxAge() int {
	return envInt("LOGFILE_MAX_AGE_DAYS", defaultMaxAgeDays)
}

// The CLI must start without any env setup, so unset or malformed values
// fall back instead of panicking.
func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		fmt.Fprintf(os.Stderr, "logx: invalid value for %s=%q, using %d\n", key, raw, fallback)
		return fallback
	}
	return v
}

// SetOutput redirects log lines, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func write(l level, category string, content []interface{}) {
	logger.Printf("%s[%s][%s]%s: %s", l.color, l.name, category, colorReset, fmt.Sprint(content...))
}

func Info(category string, content ...interface{}) {
	write(levelInfo, category, content)
}

func Error(category string, content ...interface{}) {
	write(levelError, category, content)
}

func Warn(category string, content ...interface{}) {
	write(levelWarn, category, content)
}

func Debug(category string, content ...interface{}) {
	write(levelDebug, category, content)
}

// Errorf logs an error message and returns a formatted error
func Errorf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	Error("ERROR", err.Error())
	return err
}
