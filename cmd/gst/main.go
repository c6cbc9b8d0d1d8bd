// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/suffixtree/gst"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	logLevel    string
	keysFile    string
	searchQuery string
	minLength   int
	minKeys     int
	showStats   bool
)

// rootCmd loads a newline-delimited file of keys into a
// gst.GeneralizedSuffixTree[int] (the value stored for each key is its
// line number) and runs whichever of search/stats/common-substring mode
// the flags select.
var rootCmd = &cobra.Command{
	Use:   "gst",
	Short: "Build and query a generalized suffix tree over a list of keys",
	Run: func(cmd *cobra.Command, _ []string) {
		logFlags(cmd)
		run()
	},
}

// logFlags logs every resolved flag value at debug level before run
// starts, the way flowlogs-pipeline's bindFlags walks cmd.Flags() to
// reconcile flag and config state.
func logFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		log.WithField(f.Name, f.Value.String()).Debug("resolved flag")
	})
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func initFlags() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warning, error")
	rootCmd.Flags().StringVar(&keysFile, "keys", "", "path to a newline-delimited file of keys (required)")
	rootCmd.Flags().StringVar(&searchQuery, "search", "", "if set, print the line numbers of every key containing this substring")
	rootCmd.Flags().IntVar(&minLength, "min-length", 0, "if > 0 (with --min-keys), list common substrings of at least this length")
	rootCmd.Flags().IntVar(&minKeys, "min-keys", 0, "if > 0 (with --min-length), require substrings to occur in at least this many keys")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print tree shape statistics")
	_ = rootCmd.MarkFlagRequired("keys")
}

func main() {
	cobra.OnInitialize(initLogger)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadTree(path string) (*gst.GeneralizedSuffixTree[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keys file: %w", err)
	}
	defer f.Close()

	t := gst.NewTree[int]()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			t.Insert(line, lineNo)
		}
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keys file: %w", err)
	}
	return t, nil
}

func run() {
	log.WithField("keys", keysFile).Info("loading keys")

	t, err := loadTree(keysFile)
	if err != nil {
		log.Errorf("failed to build tree: %v", err)
		os.Exit(1)
	}

	if searchQuery != "" {
		results := t.Search(searchQuery)
		fmt.Printf("%d key(s) contain %q: %v\n", len(results), searchQuery, results)
	}

	if minLength > 0 && minKeys > 0 {
		err := t.EnumerateCommon(minLength, minKeys, func(substring string, values []int) {
			fmt.Printf("%q: %v\n", substring, values)
		})
		if err != nil {
			log.Errorf("enumerate-common failed: %v", err)
			os.Exit(1)
		}
	}

	if showStats {
		fmt.Print(t.Statistics())
	}
}
