package hexcut

import (
	"errors"
	"fmt"
)

// BatchReport summarizes a CutAll run.
type BatchReport struct {
	Results  []*Result
	NotFound []string
	Failed   map[string]error
}

// CutAll cuts every name in dir. A missing source is recorded in NotFound and
// skipped; any other failure is recorded in Failed and does not stop the run.
// The returned error joins all failures and is nil when only NotFound entries
// occurred. done, if non-nil, is called once per name after it is processed.
func (c *Cutter) CutAll(names []string, dir string, done func(name string, err error)) (*BatchReport, error) {
	report := &BatchReport{Failed: make(map[string]error)}
	var errs []error

	for _, name := range names {
		res, err := c.Cut(name, dir)
		switch {
		case err == nil:
			report.Results = append(report.Results, res)
		case errors.Is(err, ErrNotFound):
			report.NotFound = append(report.NotFound, name)
		default:
			report.Failed[name] = err
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		if done != nil {
			done(name, err)
		}
	}

	c.Logger.Info().
		Int("written", len(report.Results)).
		Int("not_found", len(report.NotFound)).
		Int("failed", len(report.Failed)).
		Msg("batch finished")

	return report, errors.Join(errs...)
}
