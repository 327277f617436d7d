package gatsp

import (
	"github.com/sirupsen/logrus"
)

// Reporter observes a run. Reporters only read; the outcome of a run never
// depends on them.
type Reporter interface {
	// StartGeneration is called before generation gen is bred.
	StartGeneration(gen int)
	// EndGeneration is called once generation gen has replaced its parents.
	EndGeneration(gen int, pop *Population, stats GenerationStats)
	// FoundBest is called whenever the best-ever tour improves, and once for
	// the initial population with gen 0.
	FoundBest(gen int, best *Tour)
}

// ReporterSet fans every event out to its members in order.
type ReporterSet []Reporter

func (rs ReporterSet) StartGeneration(gen int) {
	for _, r := range rs {
		r.StartGeneration(gen)
	}
}

func (rs ReporterSet) EndGeneration(gen int, pop *Population, stats GenerationStats) {
	for _, r := range rs {
		r.EndGeneration(gen, pop, stats)
	}
}

func (rs ReporterSet) FoundBest(gen int, best *Tour) {
	for _, r := range rs {
		r.FoundBest(gen, best)
	}
}

// LogReporter writes progress to a logrus logger: one Debug entry per
// generation, an Info entry for each new best tour, and optionally the top
// ShowTop tours of every generation.
type LogReporter struct {
	Logger  logrus.FieldLogger
	ShowTop int
}

// NewLogReporter creates a LogReporter. A nil logger uses the logrus
// standard logger.
func NewLogReporter(logger logrus.FieldLogger, showTop int) *LogReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogReporter{Logger: logger, ShowTop: showTop}
}

func (l *LogReporter) StartGeneration(gen int) {}

func (l *LogReporter) EndGeneration(gen int, pop *Population, stats GenerationStats) {
	l.Logger.WithFields(logrus.Fields{
		"generation": gen,
		"best":       stats.Best,
		"worst":      stats.Worst,
		"mean":       stats.Mean,
		"stdev":      stats.Stdev,
	}).Debug("generation finished")

	if l.ShowTop <= 0 {
		return
	}
	for rank, t := range pop.Snapshot(l.ShowTop) {
		l.Logger.WithFields(logrus.Fields{
			"generation": gen,
			"rank":       rank,
		}).Info(t.String())
	}
}

func (l *LogReporter) FoundBest(gen int, best *Tour) {
	l.Logger.WithFields(logrus.Fields{
		"generation": gen,
		"fitness":    best.Fitness,
	}).Infof("new best tour: %s", best)
}

// HistoryReporter records the stats of every generation.
type HistoryReporter struct {
	History []GenerationStats
	Bests   []*Tour // Best-ever tours in the order they were found.
}

func (h *HistoryReporter) StartGeneration(gen int) {}

func (h *HistoryReporter) EndGeneration(gen int, pop *Population, stats GenerationStats) {
	h.History = append(h.History, stats)
}

func (h *HistoryReporter) FoundBest(gen int, best *Tour) {
	h.Bests = append(h.Bests, best.Clone())
}
