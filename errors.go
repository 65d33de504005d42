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

package eam

import (
	"errors"
	"fmt"
	"strings"
)

//Error kinds. They are the messages of the CError values returned by this package
//and can be matched with errors.Is.
var (
	ErrDomain         = errors.New("argument outside the domain of the function")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownPair    = errors.New("unknown species pair")
	ErrUnknownVariant = errors.New("unknown coefficient variant")
)

//CError is the error type of the eam package. It fullfills eam.Error.
type CError struct {
	kind     error
	msg      string
	deco     []string
	critical bool
}

func newError(kind error, caller string, format string, args ...interface{}) CError {
	return CError{kind: kind, msg: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

func (err CError) Error() string {
	s := "goeam: " + err.kind.Error()
	if err.msg != "" {
		s += ": " + err.msg
	}
	if len(err.deco) > 0 {
		s += " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return s
}

//Decorate Adds new information to the error
func (err CError) Decorate(dec string) []string {
	//The receiver is not a pointer, but err.deco is a slice header, so callers
	//that keep the returned slice see the addition.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is always true for errors in this package: nothing here can be
//safely ignored.
func (err CError) Critical() bool { return err.critical }

//Is allows errors.Is(err, eam.ErrDomain) and friends.
func (err CError) Is(target error) bool { return err.kind == target }

//Unwrap returns the error kind.
func (err CError) Unwrap() error { return err.kind }

//errDecorate adds caller to the decoration of err, if err is a CError.
//Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if e, ok := err.(CError); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
