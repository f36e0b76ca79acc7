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

package torsion

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding info to the error as it is
//passed up the call stack, without changing its type or wrapping it
//around something else. The decoration slice should contain a list of
//the functions in the calling stack, plus, for each function, any
//relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. If dec is empty, the current decoration is returned
//without adding the empty string to it.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. Calling it with an error from outside the
//library is a programming mistake, so it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//MissingTagError means a required SD data tag is absent from a molecule.
type MissingTagError struct {
	CError
	Tag string
}

func newMissingTagError(tag string) *MissingTagError {
	return &MissingTagError{CError{msg: fmt.Sprintf("Molecule does not have the SD data tag '%s'", tag)}, tag}
}

//MalformedTagError means an SD data tag is present but its value can not
//be interpreted, e.g. a dihedral tag without exactly 4 valid atom indexes.
type MalformedTagError struct {
	CError
	Tag   string
	Value string
}

func newMalformedTagError(tag, value, problem string) *MalformedTagError {
	return &MalformedTagError{CError{msg: fmt.Sprintf("SD data tag '%s' with value '%s' is malformed: %s", tag, value, problem)}, tag, value}
}

//RuleLoadError means a torsion rule was rejected by the conformer
//sampler. It is not recoverable: generation aborts on the first
//rejected rule.
type RuleLoadError struct {
	CError
	Rule string
}

func newRuleLoadError(rule string) *RuleLoadError {
	return &RuleLoadError{CError{msg: fmt.Sprintf("Failed to add torsion rule: %s", rule)}, rule}
}

//GenerationError means the conformer sampler produced zero conformers.
type GenerationError struct {
	CError
}

func newGenerationError(title string) *GenerationError {
	return &GenerationError{CError{msg: fmt.Sprintf("Conformers cannot be generated for %s", title)}}
}

//OutOfRangeError means an atom index exceeds the atom count of the
//molecule it is used against.
type OutOfRangeError struct {
	CError
	Index int
	Size  int
}

func newOutOfRangeError(index, size int) *OutOfRangeError {
	return &OutOfRangeError{CError{msg: fmt.Sprintf("Atom index %d out of range (molecule has %d atoms)", index, size)}, index, size}
}
