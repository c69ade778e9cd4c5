package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/aigen"
	"github.com/abhisek/paomind/internal/config"
	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/practice"
)

// Deps are the collaborators shared by every page. Screens read the table
// and settings; the custom store is the only thing they mutate.
type Deps struct {
	Table    pao.Table
	Custom   *custom.Store
	Rand     practice.Rand
	Practice config.Practice

	// Copy puts text on the system clipboard.
	Copy func(string) error

	// Generator is nil when no LLM provider is configured.
	Generator *aigen.Generator

	Log *zap.Logger
	Now func() time.Time
}

// Resolver returns a resolver over the table with the custom store as
// fallback.
func (d Deps) Resolver() *pao.Resolver {
	if d.Custom == nil {
		return pao.NewResolver(d.Table, nil)
	}
	return pao.NewResolver(d.Table, d.Custom)
}

// Logger returns d.Log or a no-op logger.
func (d Deps) Logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// Clock returns d.Now or time.Now.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Random returns d.Rand or a clock-seeded source.
func (d Deps) Random() practice.Rand {
	if d.Rand == nil {
		return practice.NewRand()
	}
	return d.Rand
}
