package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// InitLogger sets up the shared structured logger for the hub.
func InitLogger() {
	Log = logrus.New()

	Log.Out = os.Stdout

	// JSON output so log aggregation can filter by field
	Log.SetFormatter(&logrus.JSONFormatter{})

	Log.SetLevel(logrus.InfoLevel)
}
