package config

import (
	"path/filepath"
	"runtime"
)

type Config struct {
	DataPath string
	TempPath string

	// WorkerCount is the number of parse workers used when loading a
	// playlist. Zero means one worker per logical CPU.
	WorkerCount int

	// MinChunkSize is the smallest number of playlist rows a parse chunk
	// may hold. Inputs smaller than WorkerCount*MinChunkSize are parsed
	// in a single chunk.
	MinChunkSize int

	// StrictParsing rejects payload rows that have no preceding #EXTINF
	// row instead of building an implicit channel for them.
	StrictParsing bool
}

var globalConfig = &Config{
	DataPath:     "/iptv-toolkit/data/",
	TempPath:     "/tmp/iptv-toolkit/",
	WorkerCount:  0,
	MinChunkSize: 100,
}

func GetConfig() *Config {
	return globalConfig
}

func SetConfig(c *Config) {
	globalConfig = c
}

func (c *Config) EffectiveWorkerCount() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	return runtime.NumCPU()
}

func GetSnapshotsDirPath() string {
	return filepath.Join(globalConfig.DataPath, "snapshots/")
}

func GetSourcesDirPath() string {
	return filepath.Join(globalConfig.TempPath, "sources/")
}
