/*
 * NanoKernel - Command parser.
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

// Package parser implements the small command grammar the monitor console
// accepts: boot, halt, reboot, ipc send/recv, stack alloc/free, mem
// read/write, and quit.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/nanokernel/nanokernel/kernel/ipc"
	"github.com/nanokernel/nanokernel/kernel/session"
)

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *session.Session) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "boot", min: 2, process: boot},
	{name: "halt", min: 2, process: halt},
	{name: "reboot", min: 3, process: reboot},
	{name: "ipc", min: 2, process: ipcCmd, complete: ipcComplete},
	{name: "stack", min: 2, process: stackCmd, complete: stackComplete},
	{name: "mem", min: 2, process: memCmd, complete: memComplete},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand executes one command line against sess, returning true if
// the console should exit.
func ProcessCommand(commandLine string, sess *session.Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, fmt.Errorf("command not found: %s", name)
	}
	if len(match) > 1 {
		return false, fmt.Errorf("ambiguous command: %s", name)
	}
	return match[0].process(&line, sess)
}

// CompleteCmd completes a partial command line for interactive editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if line.pos > 0 && line.line[line.pos-1] == ' ' {
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(&line)
	}

	match := matchList(name)
	out := make([]string, len(match))
	for i, m := range match {
		out[i] = m.name
	}
	return out
}

func matchCommand(m cmd, word string) bool {
	if len(word) > len(m.name) {
		return false
	}
	for i := range word {
		if word[i] != m.name[i] {
			return false
		}
	}
	return len(word) >= m.min
}

func matchList(word string) []cmd {
	if word == "" {
		return nil
	}
	var out []cmd
	for _, m := range cmdList {
		if matchCommand(m, word) {
			out = append(out, m)
		}
	}
	return out
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// getWord returns the next whitespace-delimited word and advances past the
// trailing space, so isEOL()+line[pos-1] can tell a completer whether the
// cursor sits just after a finished word.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	word := l.line[start:l.pos]
	l.skipSpace()
	return word
}

func boot(_ *cmdLine, sess *session.Session) (bool, error) {
	if sess.Running() {
		return false, errors.New("already running")
	}
	sess.Boot()
	return false, nil
}

func halt(_ *cmdLine, sess *session.Session) (bool, error) {
	if !sess.Running() {
		return false, errors.New("not running")
	}
	go sess.Halt(context.Background())
	return false, nil
}

func reboot(_ *cmdLine, sess *session.Session) (bool, error) {
	sess.Reboot()
	return false, nil
}

func quit(_ *cmdLine, _ *session.Session) (bool, error) {
	return true, nil
}

func ipcComplete(_ *cmdLine) []string { return []string{"send", "recv"} }

func ipcCmd(line *cmdLine, sess *session.Session) (bool, error) {
	sub := line.getWord()
	switch sub {
	case "send":
		idWord := line.getWord()
		id, err := parseTaskID(idWord)
		if err != nil {
			return false, err
		}
		payload := strings.TrimSpace(line.line[line.pos:])
		if payload == "" {
			return false, errors.New("ipc send: missing payload")
		}
		msg := ipc.Message{SenderID: 0, MessageType: 0}
		n := copy(msg.Payload[:], payload)
		msg.PayloadSize = uint8(n)
		if !sess.Queue(id).Send(msg) {
			return false, errors.New("ipc send: queue full")
		}
		return false, nil
	case "recv":
		idWord := line.getWord()
		id, err := parseTaskID(idWord)
		if err != nil {
			return false, err
		}
		msg, ok := sess.Queue(id).Receive()
		if !ok {
			return false, errors.New("ipc recv: queue empty")
		}
		fmt.Printf("from %d: %s\n", msg.SenderID, string(msg.Payload[:msg.PayloadSize]))
		return false, nil
	default:
		return false, fmt.Errorf("ipc: unknown subcommand %q", sub)
	}
}

func stackComplete(_ *cmdLine) []string { return []string{"alloc", "free"} }

func stackCmd(line *cmdLine, sess *session.Session) (bool, error) {
	sub := line.getWord()
	idWord := line.getWord()
	id, err := parseTaskID(idWord)
	if err != nil {
		return false, err
	}
	switch sub {
	case "alloc":
		top, err := sess.Stacks.Allocate(int(id))
		if err != nil {
			return false, err
		}
		fmt.Printf("stack %d top=0x%x\n", id, top)
		return false, nil
	case "free":
		if err := sess.Stacks.Deallocate(int(id)); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, fmt.Errorf("stack: unknown subcommand %q", sub)
	}
}

func memComplete(_ *cmdLine) []string { return []string{"read", "write"} }

func memCmd(line *cmdLine, sess *session.Session) (bool, error) {
	sub := line.getWord()
	addrWord := line.getWord()
	addr, err := parseUint(addrWord)
	if err != nil {
		return false, err
	}
	switch sub {
	case "read":
		v := sess.Arch.ReadByteFromAddress(addr)
		fmt.Printf("[0x%x] = 0x%02x\n", addr, v)
		return false, nil
	case "write":
		valWord := line.getWord()
		val, err := parseUint(valWord)
		if err != nil {
			return false, err
		}
		sess.Arch.WriteByteToAddress(addr, byte(val))
		return false, nil
	default:
		return false, fmt.Errorf("mem: unknown subcommand %q", sub)
	}
}

func parseTaskID(word string) (uint8, error) {
	n, err := strconv.ParseUint(word, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: %w", word, err)
	}
	return uint8(n), nil
}

func parseUint(word string) (uint64, error) {
	if strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X") {
		return strconv.ParseUint(word[2:], 16, 64)
	}
	return strconv.ParseUint(word, 10, 64)
}
