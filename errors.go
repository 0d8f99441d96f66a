// seehuhn.de/go/skeleton - straight skeletons for 2D polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package skeleton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every [*InputError].
	ErrInvalidInput = errors.New("skeleton: invalid input polygon")

	// ErrInconsistent is matched by every [*ConsistencyError].
	ErrInconsistent = errors.New("skeleton: internal consistency violated")

	// ErrIterationLimit is matched by the [*ConsistencyError] returned when
	// the simulation does not terminate within the configured number of
	// levels.
	ErrIterationLimit = errors.New("skeleton: iteration limit exceeded")
)

// InputError reports a polygon which cannot be processed.
type InputError struct {
	Contour int // 0 for the outer contour, i+1 for hole i, -1 if unknown
	Reason  string
	Err     error // underlying error, if any
}

func (e *InputError) Error() string {
	msg := "skeleton: "
	switch {
	case e.Contour == 0:
		msg += "outer contour: "
	case e.Contour > 0:
		msg += fmt.Sprintf("hole %d: ", e.Contour-1)
	}
	msg += e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// ConsistencyError reports that the simulation reached a state which
// violates one of its invariants. This indicates either a bug, or a
// degenerate input which was not caught by input validation.
type ConsistencyError struct {
	Invariant string
	Detail    string

	limit bool
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("skeleton: %s: %s", e.Invariant, e.Detail)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistent || (e.limit && target == ErrIterationLimit)
}
