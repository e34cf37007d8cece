package wad

import (
	"io"
	"log"
)

// logger is silent until SetLogger is called
var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger sets the logger used for progress messages while reading and writing WADs.
func SetLogger(l *log.Logger) {
	logger = l
}
