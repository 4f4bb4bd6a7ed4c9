package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type StderrHook struct{}

func (h *StderrHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel}
}

func (h *StderrHook) Fire(entry *logrus.Entry) error {
	entry.Logger.Out = os.Stderr
	return nil
}

// SetupLogger routes warnings and above to stderr so history output on
// stdout stays pipeable. Verbose surfaces the store's swallowed errors.
func SetupLogger(verbose bool) {
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}
	hook := &StderrHook{}
	logrus.AddHook(hook)
}
