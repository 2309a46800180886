package logging

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Configure sets up rotating file logging at the given path. An empty path
// leaves logging on stderr.
func Configure(path string) {
	if path == "" {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   false,
	})
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
