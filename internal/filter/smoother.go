// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package filter smooths the raw channel values with a fixed-window
// moving average, one independent window per channel.
package filter

import (
	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

// DefaultWindowSize is the number of recent values averaged per channel.
const DefaultWindowSize = 10

// window holds the most recent raw values for one channel, oldest
// first. Length never exceeds cap; once full it stays full.
type window struct {
	values []float64
	cap    int
}

func (w *window) push(v float64) {
	if len(w.values) == w.cap {
		// Strict FIFO, single eviction per insert.
		copy(w.values, w.values[1:])
		w.values[len(w.values)-1] = v
		return
	}
	w.values = append(w.values, v)
}

func (w *window) mean() float64 {
	if len(w.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w.values {
		sum += v
	}
	return sum / float64(len(w.values))
}

// Smoother owns one moving-average window per telemetry channel.
//
// It holds no lock: the pipeline touches it from a single reader
// goroutine only. State persists across transport reconnects; a
// reconnect must not flush smoothing history.
type Smoother struct {
	windows [telemetry.ChannelCount]window
}

// NewSmoother creates a smoother whose windows hold size values each.
// Sizes below 1 fall back to DefaultWindowSize.
func NewSmoother(size int) *Smoother {
	if size < 1 {
		size = DefaultWindowSize
	}
	s := &Smoother{}
	for i := range s.windows {
		s.windows[i] = window{values: make([]float64, 0, size), cap: size}
	}
	return s
}

// Update appends raw to the channel's window, evicting the oldest value
// once the window is full, and returns the arithmetic mean of the
// retained values. While the window is still filling, the mean covers
// however many values have been seen, never zero padding.
func (s *Smoother) Update(ch telemetry.Channel, raw float64) float64 {
	w := &s.windows[ch]
	w.push(raw)
	return w.mean()
}

// Mean returns the channel's current mean without modifying the window.
func (s *Smoother) Mean(ch telemetry.Channel) float64 {
	return s.windows[ch].mean()
}

// Len returns how many values the channel's window currently holds.
func (s *Smoother) Len(ch telemetry.Channel) int {
	return len(s.windows[ch].values)
}

// Apply runs every channel of raw through its window, in wire order,
// and returns the smoothed sample.
func (s *Smoother) Apply(raw telemetry.Sample) telemetry.Sample {
	vals := raw.Values()

	var out [telemetry.ChannelCount]float64
	for i, v := range vals {
		out[i] = s.Update(telemetry.Channel(i), v)
	}
	return telemetry.FromValues(out)
}
