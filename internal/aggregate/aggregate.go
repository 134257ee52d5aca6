// Package aggregate loads candidate files for one role and merges their
// extracted usernames into a single set.
package aggregate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harrison/followcheck/internal/extract"
	"github.com/harrison/followcheck/internal/stringset"
)

// Logger receives per-file diagnostics during aggregation.
// *logger.ConsoleLogger satisfies it.
type Logger interface {
	LogDebug(message string)
}

// Usernames reads each path in order, parses it as JSON, extracts usernames,
// and unions the results. A file that cannot be read or parsed is skipped
// with a debug diagnostic; a single corrupt file never aborts the run.
// log may be nil to suppress diagnostics.
func Usernames(paths []string, log Logger) stringset.Set {
	merged := stringset.New()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			debugf(log, "[skip] %s: %v", path, err)
			continue
		}

		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			debugf(log, "[skip] %s: %v", path, err)
			continue
		}

		found := extract.Usernames(doc)
		merged.Union(found)
		debugf(log, "[ok] %s: %d usernames", path, found.Len())
	}
	return merged
}

func debugf(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.LogDebug(fmt.Sprintf(format, args...))
}
