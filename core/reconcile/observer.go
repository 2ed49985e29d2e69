package reconcile

import (
	"go.uber.org/zap"
)

// BatchProgress is emitted after each lockstep batch.
type BatchProgress struct {
	// Batch is the 1-based batch number.
	Batch int
	// Size is the number of aligned pairs in this batch.
	Size int
	// Done is the number of aligned pairs resolved so far.
	Done int
	// Total is the number of aligned pairs in the run.
	Total int
}

// FetchWarning is emitted for a failed fetch or a non-2xx response.
type FetchWarning struct {
	ID         int64
	Side       Side
	URL        string
	StatusCode int
	// Err is nil for non-2xx responses.
	Err error
}

// Observer receives reconciliation events. Events of one run arrive in order
// from the goroutine running Reconcile, but a shared Engine may run several
// reconciliations at once, so implementations must be safe for concurrent use.
type Observer interface {
	BatchProgress(p BatchProgress)
	FetchWarning(w FetchWarning)
	ArchiveSkipped(id int64, url string)
	MismatchFound(m MismatchRecord)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) BatchProgress(BatchProgress)  {}
func (NopObserver) FetchWarning(FetchWarning)    {}
func (NopObserver) ArchiveSkipped(int64, string) {}
func (NopObserver) MismatchFound(MismatchRecord) {}

type multiObserver []Observer

// Observers fans events out to every non-nil observer, in order.
func Observers(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multiObserver) BatchProgress(p BatchProgress) {
	for _, o := range m {
		o.BatchProgress(p)
	}
}

func (m multiObserver) FetchWarning(w FetchWarning) {
	for _, o := range m {
		o.FetchWarning(w)
	}
}

func (m multiObserver) ArchiveSkipped(id int64, url string) {
	for _, o := range m {
		o.ArchiveSkipped(id, url)
	}
}

func (m multiObserver) MismatchFound(r MismatchRecord) {
	for _, o := range m {
		o.MismatchFound(r)
	}
}

// LogObserver writes events through a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer backed by l.
func NewLogObserver(l *zap.Logger) *LogObserver {
	return &LogObserver{log: l}
}

func (o *LogObserver) BatchProgress(p BatchProgress) {
	o.log.Info("Processed batch",
		zap.Int("batch", p.Batch),
		zap.Int("size", p.Size),
		zap.Int("done", p.Done),
		zap.Int("total", p.Total),
	)
}

func (o *LogObserver) FetchWarning(w FetchWarning) {
	fields := []zap.Field{
		zap.Int64("id", w.ID),
		zap.String("side", string(w.Side)),
		zap.String("url", w.URL),
	}
	if w.Err != nil {
		o.log.Warn("Failed to resolve URL, using original", append(fields, zap.Error(w.Err))...)
		return
	}
	o.log.Warn("Unexpected status while resolving URL", append(fields, zap.Int("status", w.StatusCode))...)
}

func (o *LogObserver) ArchiveSkipped(id int64, url string) {
	o.log.Debug("Skipping archived URL", zap.Int64("id", id), zap.String("url", url))
}

func (o *LogObserver) MismatchFound(m MismatchRecord) {
	o.log.Warn("URL mismatch",
		zap.Int64("id", m.ID),
		zap.String("url1", m.URL1),
		zap.String("url2", m.URL2),
		zap.String("reason", m.Reason),
	)
}
