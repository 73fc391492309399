// Package discovery enumerates candidate report files under a root path and
// filters them down to structured report files.
package discovery

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/qa-insights/go-qa-analytics/internal/filesystem"
)

// reportExtension marks structured report files. Matching is case-sensitive.
const reportExtension = ".xml"

// PathFetcher yields the candidate file paths under a root path: the path
// itself when it names a regular file, or its immediate children when it
// names a directory. There is no recursion beyond one level.
type PathFetcher struct {
	rootPath string
	fs       filesystem.Filesystem
	logger   *slog.Logger
}

// NewPathFetcher creates a PathFetcher over the given filesystem.
func NewPathFetcher(rootPath string, fs filesystem.Filesystem, logger *slog.Logger) *PathFetcher {
	return &PathFetcher{rootPath: rootPath, fs: fs, logger: logger}
}

// FetchPaths enumerates candidates. An invalid root or an enumeration error
// is logged and yields whatever was collected so far; discovery never
// crashes the run.
func (pf *PathFetcher) FetchPaths() []string {
	info, err := pf.fs.Stat(pf.rootPath)
	if err != nil {
		pf.logger.Error("invalid path", "path", pf.rootPath, "err", err)
		return nil
	}

	if !info.IsDir() {
		return []string{pf.rootPath}
	}

	entries, err := pf.fs.ReadDir(pf.rootPath)
	if err != nil {
		// ReadDir returns the entries read before the failure; keep them
		// so a partial listing is still processed.
		pf.logger.Error("error fetching paths", "path", pf.rootPath, "err", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(pf.rootPath, entry.Name()))
	}
	return paths
}

// FilterReportFiles keeps only paths whose extension marks them as report
// files. Non-matching entries are expected, not exceptional; they are dropped
// with a debug-level diagnostic.
func FilterReportFiles(paths []string, logger *slog.Logger) []string {
	var reports []string
	for _, path := range paths {
		if strings.HasSuffix(path, reportExtension) {
			reports = append(reports, path)
		} else {
			logger.Debug("skipped non-XML file", "path", path)
		}
	}
	return reports
}
