package log

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	cblog "github.com/charmbracelet/log"
)

// Logger embeds the Charm Logger
type Logger struct{ *cblog.Logger }

var (
	logger     *Logger
	initLogger sync.Once
)

// GetLogger returns a logger instance
func GetLogger() *Logger {
	initLogger.Do(func() {
		logger = &Logger{newBase(os.Stderr)}
	})
	return logger
}

func newBase(w io.Writer) *cblog.Logger {
	styles := cblog.DefaultStyles()
	styles.Levels[cblog.FatalLevel] = lipgloss.NewStyle().
		SetString(" FATAL").
		Foreground(lipgloss.Color("1"))
	styles.Levels[cblog.ErrorLevel] = lipgloss.NewStyle().
		SetString(" ERROR").
		Foreground(lipgloss.Color("9"))
	styles.Levels[cblog.WarnLevel] = lipgloss.NewStyle().
		SetString("  WARN").
		Foreground(lipgloss.Color("3"))
	styles.Levels[cblog.InfoLevel] = lipgloss.NewStyle().
		SetString("  INFO").
		Foreground(lipgloss.Color("2"))
	styles.Levels[cblog.DebugLevel] = lipgloss.NewStyle().
		SetString(" DEBUG").
		Foreground(lipgloss.Color("4"))

	base := cblog.New(w)
	base.SetStyles(styles)
	base.SetReportTimestamp(false)
	base.SetLevel(cblog.InfoLevel)
	base.SetPrefix(" dmconfig")
	return base
}

// SetDebug toggles debug output on the shared logger.
func SetDebug(enabled bool) {
	if enabled {
		GetLogger().SetLevel(cblog.DebugLevel)
		return
	}
	GetLogger().SetLevel(cblog.InfoLevel)
}

// * Convenience wrappers

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Debug(msg, keyvals...) }
func Debugf(format string, v ...interface{})        { GetLogger().Logger.Debugf(format, v...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Info(msg, keyvals...) }
func Infof(format string, v ...interface{})         { GetLogger().Logger.Infof(format, v...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Warn(msg, keyvals...) }
func Warnf(format string, v ...interface{})         { GetLogger().Logger.Warnf(format, v...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Error(msg, keyvals...) }
func Errorf(format string, v ...interface{})        { GetLogger().Logger.Errorf(format, v...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Fatal(msg, keyvals...) }
func Fatalf(format string, v ...interface{})        { GetLogger().Logger.Fatalf(format, v...) }
