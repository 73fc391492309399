package reporting

import (
	"github.com/qa-insights/go-qa-analytics/internal/reportconfig"
	"github.com/qa-insights/go-qa-analytics/internal/settings"
)

// IReportContext defines the context handed to report builders.
type IReportContext interface {
	ReportConfiguration() reportconfig.IReportConfiguration
	Settings() *settings.Settings
}

// ReportContext is the concrete implementation of IReportContext.
type ReportContext struct {
	cfg   reportconfig.IReportConfiguration
	stngs *settings.Settings
}

func (rc *ReportContext) ReportConfiguration() reportconfig.IReportConfiguration { return rc.cfg }
func (rc *ReportContext) Settings() *settings.Settings                           { return rc.stngs }

// NewReportContext creates a new ReportContext.
func NewReportContext(config reportconfig.IReportConfiguration, stngs *settings.Settings) *ReportContext {
	return &ReportContext{
		cfg:   config,
		stngs: stngs,
	}
}
