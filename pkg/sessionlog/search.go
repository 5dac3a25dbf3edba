package sessionlog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/movies"
)

// LogSearch appends the outcome of one movie search to the search audit
// file of user: one line per match, or a single "not found" line. It never
// fails the caller; a missing user folder or a write error is logged as a
// warning on the context logger and the entry is dropped.
func (l *Logger) LogSearch(ctx context.Context, user, query string, results []movies.Entry) {
	logger := logging.FromContext(ctx)

	dir, err := l.Dir(user)
	if err != nil {
		logger.Warn().Err(err).Str("user", user).Msg("Search not logged")
		return
	}
	if !l.Exists(user) {
		logger.Warn().Str("user", user).Str("path", dir).Msg("User folder does not exist, search not logged")
		return
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("Search Query: %s - Found: %s | Genre: %s | Year: %d", query, r.Name, r.Genre, r.Year))
	}
	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("Search Query: %s - Movie not found", query))
	}

	path := filepath.Join(dir, constants.SearchLogFile)
	if err := appendLines(path, lines...); err != nil {
		logger.Warn().Err(err).Str("user", user).Msg("Search not logged")
		return
	}
	logger.Debug().Str("user", user).Str("query", query).Int("matches", len(results)).Msg("Search logged")
}
