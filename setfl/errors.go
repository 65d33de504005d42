/*
 * errors.go, part of goeam.
 *
 *
 * Copyright 2023 C. J. Williams
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

package setfl

import (
	"errors"
	"fmt"

	eam "github.com/cjwilliams/goeam"
)

//Error kinds, usable with errors.Is.
var (
	ErrGrid     = errors.New("invalid grid")
	ErrElements = errors.New("invalid element list")
	ErrHeader   = errors.New("invalid header")
	ErrSink     = errors.New("output not writable")
	ErrEval     = errors.New("evaluation failed")
)

//errDecorate is a helper function that decorates the error with the caller's name before returning it,
//if the error is a setfl Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}

//evalError wraps an error coming from the EAM functions.
func evalError(cause error, caller, format string, args ...interface{}) Error {
	e := newError(ErrEval, "", caller, format, args...)
	e.cause = cause
	if c, ok := cause.(eam.Error); ok {
		e.critical = c.Critical()
	}
	return e
}

//Error is the general structure for setfl errors. It fullfills eam.Error
type Error struct {
	kind     error
	message  string
	filename string //the output file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

func newError(kind error, filename, caller, format string, args ...interface{}) Error {
	return Error{kind: kind, message: fmt.Sprintf(format, args...), filename: filename, deco: []string{caller}, critical: true}
}

func (err Error) Error() string {
	s := "setfl"
	if err.filename != "" {
		s += " file " + err.filename
	}
	s += " error: " + err.kind.Error()
	if err.message != "" {
		s += ": " + err.message
	}
	if err.cause != nil {
		s += ": " + err.cause.Error()
	}
	return s
}

//Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file the failing document was to be written to.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func (err Error) Is(target error) bool { return err.kind == target }

//Unwrap gives access to the error that caused this one, if any, so
//errors.Is(err, eam.ErrDomain) works through a tabulation error.
func (err Error) Unwrap() error { return err.cause }
