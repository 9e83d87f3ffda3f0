// json2iptv converts the JSON produced by iptv2json back into an M3U Plus
// playlist.
package main

import (
	"flag"
	"fmt"
	"os"

	"iptv-toolkit/logger"
	"iptv-toolkit/playlist"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.json>\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Default.Fatalf("Error reading JSON playlist: %v", err)
	}
	pl, err := playlist.FromJSON(data)
	if err != nil {
		logger.Default.Fatalf("Error decoding JSON playlist: %v", err)
	}
	fmt.Print(pl.MarshalM3UPlus())
}
