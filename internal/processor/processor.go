// Package processor runs the concurrent ingestion pipeline: discover
// candidate files under a root path, filter to report files, parse each one
// on a bounded worker pool, and merge the resulting suites into one
// collection.
package processor

import (
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/qa-insights/go-qa-analytics/internal/discovery"
	"github.com/qa-insights/go-qa-analytics/internal/filesystem"
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/parser"
)

// DefaultWorkerCount is the pool size used when the caller does not specify
// a positive worker count.
const DefaultWorkerCount = 10

// Processor ingests every report file under one root path. A Processor
// instance processes its path exactly once; repeated Run calls return the
// memoized collection.
type Processor struct {
	rootPath string
	fs       filesystem.Filesystem
	config   parser.ParserConfig
	logger   *slog.Logger

	once sync.Once

	// mu guards testSuites during the fan-out; after Run returns the
	// collection is read-only.
	mu         sync.Mutex
	testSuites []model.TestSuite
}

// New creates a Processor for the given root path.
func New(rootPath string, fs filesystem.Filesystem, config parser.ParserConfig, logger *slog.Logger) *Processor {
	return &Processor{
		rootPath: rootPath,
		fs:       fs,
		config:   config,
		logger:   logger,
	}
}

// Run processes all report files under the root path with the given number
// of workers and returns the merged suite collection. Order across files is
// not guaranteed; within one file's contribution, class and case order is
// deterministic. A single file's failure is logged and skipped, never fatal.
func (p *Processor) Run(workers int) []model.TestSuite {
	p.once.Do(func() {
		if workers <= 0 {
			workers = DefaultWorkerCount
		}

		paths := discovery.NewPathFetcher(p.rootPath, p.fs, p.logger).FetchPaths()
		reportFiles := discovery.FilterReportFiles(paths, p.logger)

		workerPool := pool.New().WithMaxGoroutines(workers)
		for _, path := range reportFiles {
			path := path
			workerPool.Go(func() {
				p.processReport(path)
			})
		}
		workerPool.Wait()
	})
	return p.TestSuites()
}

// TestSuites returns the merged collection. Callers must only read it after
// Run has returned.
func (p *Processor) TestSuites() []model.TestSuite {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.testSuites
}

func (p *Processor) processReport(path string) {
	resultParser, err := parser.FindParserForFile(path)
	if err != nil {
		p.logger.Error("failed to process report", "path", path, "err", err)
		return
	}

	suite, err := resultParser.Parse(path, p.config)
	if err != nil {
		p.logger.Error("failed to process report", "path", path, "err", err)
		return
	}

	p.mu.Lock()
	p.testSuites = append(p.testSuites, *suite)
	p.mu.Unlock()
}
