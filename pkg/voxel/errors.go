package voxel

import "errors"

// ErrInvalidArgument marks inputs rejected before any grid is allocated.
var ErrInvalidArgument = errors.New("invalid argument")
