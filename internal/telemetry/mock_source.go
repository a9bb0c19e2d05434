// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package telemetry

import (
	"math"
	"time"
)

type mockSource struct {
	start time.Time
}

// NewMockSource creates a mock telemetry source that generates smooth
// changing values, resembling a device rocking gently on a desk.
func NewMockSource() Source {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) Next() (Sample, error) {
	elapsed := time.Since(m.start).Seconds()

	return Sample{
		AccX:  0.05 * math.Sin(elapsed),
		AccY:  0.04 * math.Cos(elapsed*0.7),
		AccZ:  1.0 + 0.02*math.Sin(elapsed*1.3),
		GyroX: 2.0 * math.Sin(elapsed*0.5),
		GyroY: 1.5 * math.Cos(elapsed*0.9),
		GyroZ: 0.5 * math.Sin(elapsed*1.1),
	}, nil
}
