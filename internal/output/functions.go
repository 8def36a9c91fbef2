package output

import (
	"fmt"
	"os"
)

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FileLine renders one fetched chunk for the summary
func FileLine(index int, path string) string {
	size := "?"
	if info, err := os.Stat(path); err == nil {
		size = FormatBytes(uint64(info.Size()))
	}
	return fmt.Sprintf("%s %s %s %s",
		FSuccess(StyleSymbols["pass"]),
		FDebug(fmt.Sprintf("[%d]", index)),
		path,
		FDetail(size),
	)
}
