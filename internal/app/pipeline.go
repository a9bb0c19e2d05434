// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"sync/atomic"

	"github.com/relabs-tech/imu_telemetry/internal/filter"
	"github.com/relabs-tech/imu_telemetry/internal/frame"
	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

// Pipeline is the single sequential parse→smooth path from raw lines
// to (raw, filtered) updates.
//
// HandleLine must be called from one goroutine only, in arrival order;
// the smoothing windows carry no lock. Consumers drain Updates and
// Rejects asynchronously: the handoff never blocks the reader, and
// whatever a lagging consumer cannot take is dropped and counted.
type Pipeline struct {
	smoother *filter.Smoother

	Updates chan telemetry.Update
	Rejects chan string

	droppedUpdates uint64
	droppedRejects uint64
}

// NewPipeline creates a pipeline with per-channel windows of windowSize
// values and handoff channels of the given capacity.
func NewPipeline(windowSize, buffer int) *Pipeline {
	if buffer <= 0 {
		buffer = 64
	}
	return &Pipeline{
		smoother: filter.NewSmoother(windowSize),
		Updates:  make(chan telemetry.Update, buffer),
		Rejects:  make(chan string, buffer),
	}
}

// HandleLine classifies one line and hands the outcome off. A data
// record updates all six windows and yields an Update; anything else is
// forwarded verbatim on Rejects.
func (p *Pipeline) HandleLine(line string) {
	res := frame.Parse(line)
	if !res.OK {
		select {
		case p.Rejects <- res.Line:
		default:
			atomic.AddUint64(&p.droppedRejects, 1)
		}
		return
	}

	upd := telemetry.Update{
		Raw:      res.Sample,
		Filtered: p.smoother.Apply(res.Sample),
	}
	select {
	case p.Updates <- upd:
	default:
		atomic.AddUint64(&p.droppedUpdates, 1)
	}
}

// Dropped reports how many updates and rejected lines were discarded
// because their consumer lagged behind.
func (p *Pipeline) Dropped() (updates, rejects uint64) {
	return atomic.LoadUint64(&p.droppedUpdates), atomic.LoadUint64(&p.droppedRejects)
}
