/*
 * NanoKernel - Configuration file parser
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package bootconfig parses the small key=value boot override file an
// operator can supply to change a board's console base, RAM size,
// interrupt-controller base, log level, or memory-controller family
// before the hardware-config defaults baked into the selected
// architecture package are used.
package bootconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Overrides holds whichever fields a boot config file set; zero values
// mean "use the architecture default".
type Overrides struct {
	ConsoleBase *uint64
	RAMSize     *uint64
	IntcBase    *uint64
	LogLevel    *int
	MemCtrl     string // "ddr", "lpddr", "gddr", or "hbm"
}

/* Boot config file format:
 *
 * '#' starts a comment, rest of line ignored.
 * blank lines are ignored.
 * <line> := <key> '=' <value>
 * <key>  := "console_base" | "ram_size" | "intc_base" | "log_level" | "memctrl"
 * <value> := <hexnumber> | <number> | <string>
 */

type optionLine struct {
	line string
	pos  int
}

func (o *optionLine) isEOL() bool {
	return o.pos >= len(o.line)
}

func (o *optionLine) skipSpace() {
	for !o.isEOL() && (o.line[o.pos] == ' ' || o.line[o.pos] == '\t') {
		o.pos++
	}
}

func (o *optionLine) rest() string {
	return strings.TrimSpace(o.line[o.pos:])
}

// parseLine splits "key = value", ignoring blank lines and comments, and
// applies the result onto dst.
func (o *optionLine) parseLine(dst *Overrides) error {
	o.skipSpace()
	if o.isEOL() || o.line[o.pos] == '#' {
		return nil
	}
	eq := strings.IndexByte(o.line[o.pos:], '=')
	if eq < 0 {
		return fmt.Errorf("bootconfig: missing '=' in %q", o.line)
	}
	key := strings.TrimSpace(o.line[o.pos : o.pos+eq])
	o.pos += eq + 1
	value := o.rest()
	if key == "" || value == "" {
		return fmt.Errorf("bootconfig: empty key or value in %q", o.line)
	}
	return applyKey(dst, key, value)
}

func applyKey(dst *Overrides, key, value string) error {
	switch strings.ToLower(key) {
	case "console_base":
		v, err := parseUint(value)
		if err != nil {
			return err
		}
		dst.ConsoleBase = &v
	case "ram_size":
		v, err := parseUint(value)
		if err != nil {
			return err
		}
		dst.RAMSize = &v
	case "intc_base":
		v, err := parseUint(value)
		if err != nil {
			return err
		}
		dst.IntcBase = &v
	case "log_level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bootconfig: invalid log_level %q: %w", value, err)
		}
		dst.LogLevel = &n
	case "memctrl":
		dst.MemCtrl = strings.ToLower(value)
	default:
		return fmt.Errorf("bootconfig: unknown key %q", key)
	}
	return nil
}

func parseUint(value string) (uint64, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return strconv.ParseUint(value[2:], 16, 64)
	}
	return strconv.ParseUint(value, 10, 64)
}

// Load reads a boot config file and returns the overrides it sets.
func Load(path string) (Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return Overrides{}, err
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (Overrides, error) {
	var out Overrides
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		ol := &optionLine{line: scanner.Text()}
		if err := ol.parseLine(&out); err != nil {
			return out, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	return out, nil
}
