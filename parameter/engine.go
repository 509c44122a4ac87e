package parameter

import (
	"time"
)

// Simulation Timing
const (
	// TickInterval is the fixed simulation step period (10 TPS)
	TickInterval = 100 * time.Millisecond

	// FrameInterval is the presentation loop target period (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Camera
const (
	// CameraLerpFactor is the exponential blend applied to the camera
	// position toward the tick-driven target, once per presentation
	// frame. Smoothing speed therefore varies with frame rate.
	CameraLerpFactor = 0.2
)

// Intent Queue
const (
	// IntentQueueSize is the ring buffer capacity, must be a power of two
	IntentQueueSize = 256

	// IntentBufferMask derives ring indices from monotonic counters
	IntentBufferMask = IntentQueueSize - 1
)
