package mintform

import (
	"encoding/json"
	"fmt"

	"github.com/clawdcat/mintboard/pkg/enum"
)

type Status int

var (
	StatusIdle    = enum.New(Status(0), "idle")
	StatusPending = enum.New(Status(1), "pending")
	StatusSuccess = enum.New(Status(2), "success")
	StatusError   = enum.New(Status(3), "error")
)

func (s Status) String() string {
	return enum.ToString(s)
}

func (s Status) MarshalJSON() ([]byte, error) {
	name := enum.ToString(s)
	if name == "" {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}

	return json.Marshal(name)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	status, err := enum.ToEnum[Status](name)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// Terminal statuses are the ones that reset themselves after a delay.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusError:
		return true
	case StatusIdle, StatusPending:
		return false
	default:
		panic(fmt.Sprintf("unknown status %d", int(s)))
	}
}
