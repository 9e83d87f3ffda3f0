// m3u-doctor repairs a malformed M3U Plus file in place of parsing it:
// split quoted rows are rejoined and unquoted numeric attribute values are
// quoted. The repaired playlist is written to the output file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"iptv-toolkit/doctor"
	"iptv-toolkit/logger"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.m3u> <output.m3u>\n", os.Args[0])
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

	fixed := doctor.SanitizeLines(lines)
	out := strings.Join(fixed, "\n") + "\n"
	if err := os.WriteFile(flag.Arg(1), []byte(out), 0644); err != nil {
		logger.Default.Fatalf("Error writing repaired playlist: %v", err)
	}
	logger.Default.Logf("Repaired playlist written to %s", flag.Arg(1))
}
