package loadout

import "errors"

var (
	ErrUnknownLoadout = errors.New("unknown loadout")
	ErrInvalidConfig  = errors.New("invalid loadout config")
)
