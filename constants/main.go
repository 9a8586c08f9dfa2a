package constants

// Version is overridden at build time via -ldflags
var Version = "source"
