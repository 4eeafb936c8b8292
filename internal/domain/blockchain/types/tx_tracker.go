package types

type TrackResult int

const (
	TrackResultUnknown TrackResult = iota
	TrackResultConfirmed
	TrackResultFailure
	TrackResultTimeout
)

func (r TrackResult) String() string {
	switch r {
	case TrackResultConfirmed:
		return "confirmed"
	case TrackResultFailure:
		return "failure"
	case TrackResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}
