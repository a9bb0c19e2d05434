// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package telemetry

// Channel indexes one of the six fixed telemetry streams.
type Channel int

const (
	AccX Channel = iota
	AccY
	AccZ
	GyroX
	GyroY
	GyroZ

	// ChannelCount is fixed by the wire format: every data frame
	// carries exactly six fields.
	ChannelCount = 6
)

var channelNames = [ChannelCount]string{"acc_x", "acc_y", "acc_z", "gyro_x", "gyro_y", "gyro_z"}

func (c Channel) String() string {
	if c < 0 || c >= ChannelCount {
		return "unknown"
	}
	return channelNames[c]
}

// Sample represents a single six-channel IMU record.
type Sample struct {
	AccX float64 `json:"acc_x"` // accel
	AccY float64 `json:"acc_y"`
	AccZ float64 `json:"acc_z"`

	GyroX float64 `json:"gyro_x"` // gyro
	GyroY float64 `json:"gyro_y"`
	GyroZ float64 `json:"gyro_z"`
}

// Values returns the channels in wire order.
func (s Sample) Values() [ChannelCount]float64 {
	return [ChannelCount]float64{s.AccX, s.AccY, s.AccZ, s.GyroX, s.GyroY, s.GyroZ}
}

// FromValues builds a Sample from channel values in wire order.
func FromValues(v [ChannelCount]float64) Sample {
	return Sample{
		AccX:  v[AccX],
		AccY:  v[AccY],
		AccZ:  v[AccZ],
		GyroX: v[GyroX],
		GyroY: v[GyroY],
		GyroZ: v[GyroZ],
	}
}

// Update pairs a raw sample with its smoothed counterpart. This is the
// payload delivered to the presentation side for every accepted frame.
type Update struct {
	Raw      Sample `json:"raw"`
	Filtered Sample `json:"filtered"`
}

// Source is anything that can provide samples over time.
// Later you'll have: mock source, replay source from file, etc.
type Source interface {
	Next() (Sample, error)
}
