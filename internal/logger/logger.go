package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. When logFile is set,
// log lines are mirrored to it in addition to stderr so operational errors
// survive restarts.
func Setup(logFile string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetReportCaller(true)

	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}
