package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString returns true if targetString is in sliceOfStrings. The comparison ignores case
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings ignoring case, or -1
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return i
		}
	}
	return -1
}

// Normalize trims and lower-cases user or source provided text
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
