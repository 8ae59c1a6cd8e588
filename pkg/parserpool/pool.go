// Package parserpool provides a pool of gnparser instances for concurrent name parsing.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Pool provides a pool of botanical gnparser instances for concurrent parsing.
type Pool interface {
	// Parse parses a scientific name string with the botanical code.
	// It retrieves a parser from the pool, parses the name, and returns
	// the parser to the pool. This method is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a name and its
	// UUID v5. Unparsed names give an empty string and invalid UUID.
	Canonical(nameString string) (string, uuid.NullUUID)

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// poolImpl implements the Pool interface using gnparser.NewPool.
type poolImpl struct {
	botanicalCh chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	// Medicinal plants are always named under the botanical code
	botanicalCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	botanicalCh := gnparser.NewPool(botanicalCfg, poolSize)

	return &poolImpl{botanicalCh: botanicalCh}
}

// Parse parses a scientific name string with the botanical code.
func (p *poolImpl) Parse(nameString string) parsed.Parsed {
	// Get a parser from the pool (blocks if all parsers are busy)
	parser := <-p.botanicalCh

	result := parser.ParseName(nameString)

	// Return the parser to the pool
	p.botanicalCh <- parser

	return result
}

// Canonical returns the simple canonical form and its UUID v5.
func (p *poolImpl) Canonical(nameString string) (string, uuid.NullUUID) {
	res := p.Parse(nameString)
	if !res.Parsed || res.Canonical == nil {
		return "", uuid.NullUUID{}
	}
	can := res.Canonical.Simple
	return can, uuid.NullUUID{UUID: gnuuid.New(can), Valid: true}
}

// Close shuts down the parser pool.
// It closes the channel and drains any remaining parsers.
func (p *poolImpl) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		// Drain the channel
		for range p.botanicalCh {
		}
	}
}
