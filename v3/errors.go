/*
 * errors.go, part of torsion.
 *
 * Copyright 2023 The torsion developers.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Error is the concrete error type of the package. The Decorate method
//allows adding information as the error is passed up the call stack
//without wrapping it into another type.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice. If dec is empty, the current
//decoration is returned unchanged.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics on conditions that point to the
//program, not the data, being wrong. It does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("torsion/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("torsion/v3: Invalid matrix for cross product")
	ErrNullVector      = PanicMsg("torsion/v3: Cannot normalize a null vector")
	ErrShape           = PanicMsg("torsion/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("torsion/v3: Index out of range")
)
