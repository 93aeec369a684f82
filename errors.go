/*
 * errors.go, part of fragprep.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
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

package fragprep

//Error is the interface for errors that the packages in this library
//implement. The Decorate method allows to add and retrieve info from
//the error, without changing its type or wrapping it around something
//else. The decorate slice should contain a list of functions in the
//calling stack, plus, for each function, any relevant information, or
//nothing. If information is to be added to an element of the slice, it
//should be in this format: "FunctionName: Extra info".
type Error interface {
	error
	Decorate(string) []string
}

//CError (Concrete Error) is the concrete type implementing the Error
//interface for this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error and returns the current
//decoration slice. If passed an empty string, it just returns the
//current value without adding anything.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and
	//tries to alter the receiver, it should work, since err.deco is a
	//slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. Errors of other types are
//wrapped in a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}
