/*
 * NanoKernel - Main process.
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

// Command nanokernel boots the architecture backend selected at compile
// time via an nkarch_<name> build tag and drops into a monitor console.
package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nanokernel/nanokernel/command/reader"
	"github.com/nanokernel/nanokernel/config/bootconfig"
	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/platform"
	"github.com/nanokernel/nanokernel/kernel/session"
	logger "github.com/nanokernel/nanokernel/util/logger"
)

var Logger *slog.Logger

func main() {
	optArch := getopt.StringLong("arch", 'a', "", "Expected architecture (validated against the build)")
	optConfig := getopt.StringLong("config", 'c', "", "Boot override config file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror log output to stderr")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			os.Stderr.WriteString("cannot create log file: " + err.Error() + "\n")
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.New(file, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	arch := platform.New()
	if arch == nil {
		Logger.Error("no architecture backend compiled in; build with -tags nkarch_<name>")
		os.Exit(1)
	}
	if *optArch != "" && *optArch != platform.Name {
		Logger.Error("requested architecture does not match build", "requested", *optArch, "built", platform.Name)
		os.Exit(1)
	}

	Logger.Info("NanoKernel starting", "arch", platform.Name)

	cfg := platform.BootConfig
	if *optConfig != "" {
		overrides, err := bootconfig.Load(*optConfig)
		if err != nil {
			Logger.Error("failed to load boot config", "error", err.Error())
			os.Exit(1)
		}
		applyOverrides(&cfg, overrides)
	}

	sess := session.New(arch, cfg)
	sess.Boot()

	reader.ConsoleReader(sess)

	Logger.Info("NanoKernel shutting down")
}

// applyOverrides layers a boot config file's overrides onto cfg. Only the
// board-level fields are adjustable this way: actually resizing the
// simulated address space requires rebuilding the architecture backend,
// which is out of scope for a running session.
func applyOverrides(cfg *hwconfig.Config, o bootconfig.Overrides) {
	if o.ConsoleBase != nil {
		cfg.ConsoleBase = *o.ConsoleBase
	}
	if o.RAMSize != nil {
		cfg.RAMSize = *o.RAMSize
	}
	if o.IntcBase != nil {
		cfg.IntcBase = *o.IntcBase
	}
}
