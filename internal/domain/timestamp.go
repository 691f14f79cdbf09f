package domain

import (
	"time"

	"github.com/tensorland/modelbox/internal/modelboxpb"
)

// TimestampFromWire converts a wire Timestamp into a UTC time.Time. A nil
// input yields the zero time. Conversion from nanoseconds truncates toward
// zero, per §4.3.
func TimestampFromWire(ts *modelboxpb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// TimestampToWire converts t into its wire representation using the full
// Unix-epoch seconds and the nanosecond remainder.
//
// The original implementation built this from second-of-minute instead of
// Unix-epoch seconds, making every outbound timestamp lossy after the first
// minute. This always emits t.Unix(), fixing that defect (see SPEC_FULL.md
// §9 and §4.3).
func TimestampToWire(t time.Time) *modelboxpb.Timestamp {
	if t.IsZero() {
		return &modelboxpb.Timestamp{}
	}
	return &modelboxpb.Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}
}
