/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blacktop/pic2term"
)

// sizeValue is a pflag.Value accepting a positive 16-bit cell count
type sizeValue int

func (v *sizeValue) String() string {
	return strconv.Itoa(int(*v))
}

func (v *sizeValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return fmt.Errorf("must be a number between 1 and 65535: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("must be greater than zero")
	}
	*v = sizeValue(n)
	return nil
}

func (v *sizeValue) Type() string {
	return "uint16"
}

// filterValue is a pflag.Value restricted to the known resampling filters
type filterValue pic2term.Filter

func (v *filterValue) String() string {
	return pic2term.Filter(*v).String()
}

func (v *filterValue) Set(s string) error {
	f, err := pic2term.ParseFilter(s)
	if err != nil {
		return err
	}
	*v = filterValue(f)
	return nil
}

func (v *filterValue) Type() string {
	return "filter"
}

// encodingValue is a pflag.Value restricted to the known output encodings
type encodingValue pic2term.Encoding

func (v *encodingValue) String() string {
	return pic2term.Encoding(*v).String()
}

func (v *encodingValue) Set(s string) error {
	e, err := pic2term.ParseEncoding(s)
	if err != nil {
		return err
	}
	*v = encodingValue(e)
	return nil
}

func (v *encodingValue) Type() string {
	return "encoding"
}

func choices(names []string) string {
	return "(" + strings.Join(names, "|") + ")"
}
