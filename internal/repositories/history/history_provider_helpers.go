package history

import (
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/history"
)

const (
	defaultScanCount   = 500
	defaultOutputLimit = 10
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}

	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// expandHome replaces a leading "~/" with the current user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~"))
}

// determineScanCount determines how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	if histSize, err := strconv.Atoi(os.Getenv("HISTSIZE")); err == nil && histSize > 0 {
		return histSize
	}
	return defaultScanCount
}

// countFrequencies groups identical lines (trailing space ignored) and sorts
// them by count descending, then alphabetically.
func countFrequencies(lines []string, outputLimit int) []history.CommandFrequency {
	if outputLimit <= 0 {
		outputLimit = defaultOutputLimit
	}

	counts := make(map[string]int)
	for _, line := range lines {
		line = strings.TrimRightFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
		if strings.TrimSpace(line) == "" {
			continue
		}
		counts[line]++
	}

	frequencies := make([]history.CommandFrequency, 0, len(counts))
	for cmd, n := range counts {
		frequencies = append(frequencies, history.CommandFrequency{Command: cmd, Count: n})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Command < frequencies[j].Command
	})

	if len(frequencies) > outputLimit {
		frequencies = frequencies[:outputLimit]
	}
	return frequencies
}
