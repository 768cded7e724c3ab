package config

const (
	LogErrorColor   = "\033[31m"
	LogInfoColor    = "\033[32m"
	LogWarningColor = "\033[33m"
	LogColorReset   = "\033[0m"
)

// Color constants for logging
const (
	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
	ColorReset = "\033[0m"
)
