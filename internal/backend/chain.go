package backend

import "github.com/rs/zerolog"

// Chain tries each enumeration source in order and uses the first
// non-empty result verbatim. Sources are never unioned: their id
// formats and coverage differ, and merging would produce duplicates.
type Chain struct {
	sources []Enumerator
	log     zerolog.Logger
}

func NewChain(log zerolog.Logger, sources ...Enumerator) *Chain {
	return &Chain{sources: sources, log: log}
}

func (c *Chain) Name() string { return "chain" }

// ListWindowIDs returns the first source's non-empty list. Erroring
// sources are skipped. When every source errors or comes back empty,
// the result is ErrBackendUnavailable.
func (c *Chain) ListWindowIDs() ([]string, error) {
	for _, src := range c.sources {
		ids, err := src.ListWindowIDs()
		if err != nil {
			c.log.Debug().Err(err).Str("source", src.Name()).Msg("enumeration source failed")
			continue
		}
		if len(ids) > 0 {
			return ids, nil
		}
	}
	return nil, ErrBackendUnavailable
}
