// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// prompter reads answers line by line, asking again on invalid input.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// Prompt asks for the domain, mesh, threshold and boundary temperatures on
// out and reads the answers from in. Invalid numbers and integers below one
// are reported and asked for again; an empty threshold selects the default.
// The remaining fields of the returned Config hold their defaults.
//
// Prompt fails only if in is exhausted or cannot be read.
func Prompt(in io.Reader, out io.Writer) (Config, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}
	cfg := Default()

	var err error
	read := func(dst *float64, prompt string) {
		if err == nil {
			*dst, err = p.float(prompt, nil)
		}
	}
	readInt := func(dst *int, prompt string) {
		if err == nil {
			*dst, err = p.int(prompt, 1)
		}
	}

	read(&cfg.Grid.Lx, "Enter the domain length in the x-direction: ")
	read(&cfg.Grid.Ly, "Enter the domain length in the y-direction: ")
	readInt(&cfg.Grid.Nx, "Enter the number of grid points along x (positive integer): ")
	readInt(&cfg.Grid.Ny, "Enter the number of grid points along y (positive integer): ")
	if err == nil {
		def := DefaultThreshold
		cfg.Threshold, err = p.float(
			fmt.Sprintf("Enter the convergence threshold [press Enter for default %g]: ", def), &def)
	}
	read(&cfg.Boundary.Bottom, "Enter the temperature at the bottom boundary: ")
	read(&cfg.Boundary.Top, "Enter the temperature at the top boundary: ")
	read(&cfg.Boundary.Left, "Enter the temperature at the left boundary: ")
	read(&cfg.Boundary.Right, "Enter the temperature at the right boundary: ")
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) float(prompt string, def *float64) (float64, error) {
	for {
		entry, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if entry == "" && def != nil {
			return *def, nil
		}
		v, err := cast.ToFloat64E(entry)
		if err != nil || entry == "" || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return v, nil
	}
}

func (p *prompter) int(prompt string, min int) (int, error) {
	for {
		entry, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := cast.ToIntE(decimal(entry))
		if err != nil || entry == "" {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid integer.")
			continue
		}
		if v < min {
			fmt.Fprintf(p.out, "Invalid input. Please enter an integer >= %d.\n", min)
			continue
		}
		return v, nil
	}
}

// decimal strips the leading zeros of a signed integer literal so that it
// is read in base 10 rather than as an octal or prefixed literal.
func decimal(s string) string {
	var sign string
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	digits := strings.TrimLeft(s, "0")
	if digits == "" && s != "" {
		digits = "0"
	}
	return sign + digits
}
