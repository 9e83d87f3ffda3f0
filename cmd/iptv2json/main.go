// iptv2json converts an M3U Plus playlist into JSON. The input is repaired
// with the doctor heuristics before and after parsing unless -no-sanitize
// is given.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"iptv-toolkit/doctor"
	"iptv-toolkit/loader"
	"iptv-toolkit/logger"
)

func main() {
	noSanitize := flag.Bool("no-sanitize", false, "skip sanitization of the playlist")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-no-sanitize] <input.m3u>\n", os.Args[0])
		os.Exit(2)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Default.Fatalf("Error opening playlist: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Default.Fatalf("Error reading playlist: %v", err)
	}

	if !*noSanitize {
		lines = doctor.SanitizeLines(lines)
	}

	pl, report, err := loader.LoadLines(context.Background(), lines)
	if err != nil {
		logger.Default.Fatalf("Error loading playlist: %v", err)
	}
	for _, diag := range report.Diagnostics {
		logger.Default.Warnf("skipped record: %s", diag)
	}
	if !*noSanitize {
		pl = doctor.SanitizePlaylist(pl)
	}

	out, err := pl.MarshalJSONIndent()
	if err != nil {
		logger.Default.Fatalf("Error encoding playlist: %v", err)
	}
	fmt.Println(string(out))
}
