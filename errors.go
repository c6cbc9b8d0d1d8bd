// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

import "errors"

// ErrInvalidArgument is returned when a caller-supplied argument violates
// a documented precondition: a negative offset or length, an extend call
// with the wrong next character, or a non-positive minLength/minKeys
// passed to EnumerateCommon.
var ErrInvalidArgument = errors.New("gst: invalid argument")

// ErrOutOfBounds is returned when a SubString operation is asked to
// address a position outside the window it covers.
var ErrOutOfBounds = errors.New("gst: index out of bounds")
