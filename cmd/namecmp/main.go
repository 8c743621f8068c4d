// Copyright 2025 The namecmp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the namecmp benchmark CLI.

namecmp loads a list of names into two structures: one sorted linked list
holding every name, and a 127-bucket hash table whose buckets are sorted
linked lists. It then searches names in both and reports how many key
comparisons each structure needed, so the cost of a single long scan can be
set against hashing to a short bucket.

# Usage

Load names.txt from the working directory and search interactively:

	namecmp

Use another file and show hints for names that were not found:

	namecmp -names /path/to/people.txt -hints

Each search prints one line per structure:

	amy was found in the linked list in 1 comparisons.
	amy was found in the hash table bucket in 1 comparisons.

A line starting with '.' ends the session and prints the totals.

# IPC Mode

With -ipc the same searches are served over stdin/stdout as MessagePack
frames, or JSON lines with -codec json. See package server for the protocol.

	namecmp -ipc -codec json

# Configuration

Runtime configuration is read from a TOML file, by default
[UserConfigDir]/namecmp/config.toml when it exists:

	[names]
	file = "names.txt"
	max_nodes = 0

	[cli]
	hints = false
	hint_limit = 5
	color = true

	[server]
	codec = "msgpack"

	[log]
	level = "warn"

Flags override the file. -init-config writes the defaults to the default
path, or to the -config path when that file does not exist yet. The input
line limit (20 bytes) and the table size (127) are fixed.

# Exit Codes

0 on normal completion, 1 when the names file cannot be opened or another
startup step fails.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/namecmp/internal/cli"
	"github.com/bastiangx/namecmp/internal/logger"
	"github.com/bastiangx/namecmp/internal/utils"
	"github.com/bastiangx/namecmp/pkg/config"
	"github.com/bastiangx/namecmp/pkg/dictionary"
	"github.com/bastiangx/namecmp/pkg/hint"
	"github.com/bastiangx/namecmp/pkg/search"
	"github.com/bastiangx/namecmp/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "namecmp"
	gh      = "https://github.com/bastiangx/namecmp"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main parses flags, loads the names, and hands over to the console or the
// IPC server. It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	initConfig := flag.Bool("init-config", false, "Write the default config file and exit")
	namesFile := flag.String("names", "", "File with one name per line (default from config: names.txt)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	ipcMode := flag.Bool("ipc", false, "Serve searches over stdin/stdout instead of the console")
	codecName := flag.String("codec", "", "IPC codec: msgpack or json (default from config)")
	hints := flag.Bool("hints", false, "Show loaded names sharing a prefix after a miss")
	noColor := flag.Bool("no-color", false, "Disable styled console output")
	maxNodes := flag.Int("max-nodes", -1, "Cap on names per structure, 0 for none (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup("warn", *debugMode)

	if *initConfig {
		path, err := writeInitialConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Print("Config ready", "path", path)
		os.Exit(0)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(appConfig.Log.Level, *debugMode)
	log.Debugf("Using config: (%s)", config.GetActiveConfigPath(usedPath))

	applyFlags(appConfig, *namesFile, *codecName, *maxNodes, *hints, *noColor)

	configDir, _ := config.GetConfigDir()
	namesPath := appConfig.Names.File
	if pathResolver, err := utils.NewPathResolver(configDir); err == nil {
		namesPath = pathResolver.ResolveNamesFile(namesPath)
	} else {
		log.Debugf("Path resolver unavailable: %v", err)
	}

	index := search.NewIndex(appConfig.Names.MaxNodes)
	defer index.Release()

	var hintIndex *hint.Index
	if appConfig.CLI.Hints && !*ipcMode {
		hintIndex = hint.New()
	}

	log.Debugf("Init index: file=[%s], maxNodes=[%d]", namesPath, appConfig.Names.MaxNodes)
	stats, err := dictionary.NewLoader(namesPath).Load(dictionary.SinkFunc(func(name string) error {
		if err := index.Add(name); err != nil {
			return err
		}
		if hintIndex != nil {
			hintIndex.Add(name)
		}
		return nil
	}))
	if err != nil {
		// os.Exit skips the deferred Release, nothing is loaded yet anyway.
		log.Error(err)
		os.Exit(1)
	}
	tableStats := index.Table().Stats()
	log.Debug("Index loaded",
		"names", stats.Loaded,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"budget", index.Budget(),
		"buckets", tableStats.UsedBuckets,
		"longest", tableStats.Longest)

	session := search.NewSession()

	if *ipcMode {
		codec, err := server.NewCodec(appConfig.Server.Codec, os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		log.Debug("spawning IPC", "codec", appConfig.Server.Codec)
		if err := server.NewServer(index, session, codec).Start(); err != nil {
			log.Fatalf("IPC error: %v", err)
		}
		return
	}

	inputHandler := cli.NewInputHandler(index, session, cli.Options{
		In:        os.Stdin,
		Out:       os.Stdout,
		Hints:     hintIndex,
		HintLimit: appConfig.CLI.HintLimit,
		Color:     appConfig.CLI.Color,
	})
	if _, err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// writeInitialConfig creates path with the defaults unless it already exists.
// Without a path the default config file is rewritten.
func writeInitialConfig(path string) (string, error) {
	if path == "" {
		return config.RebuildConfigFile()
	}
	if _, err := config.InitConfig(path); err != nil {
		return "", err
	}
	return path, nil
}

// applyFlags overrides config values with flags that were set.
func applyFlags(cfg *config.Config, namesFile, codec string, maxNodes int, hints, noColor bool) {
	if namesFile != "" {
		cfg.Names.File = namesFile
	}
	if codec != "" {
		cfg.Server.Codec = codec
	}
	if maxNodes >= 0 {
		cfg.Names.MaxNodes = maxNodes
	}
	if hints {
		cfg.CLI.Hints = true
	}
	if noColor {
		cfg.CLI.Color = false
	}
}

// printVersion shows the version banner.
func printVersion() {
	logger := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ " + AppName + " ] Linked list vs hash table comparison counts")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
	logger.Print("", "bin", filepath.Base(os.Args[0]))
}
