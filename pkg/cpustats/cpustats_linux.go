//go:build linux

package cpustats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danpilch/cpustat/pkg/clockticks"
)

const procStatPath = "/proc/stat"

// Read returns aggregate user and system CPU time since boot, parsed
// from the first line of /proc/stat.
func Read() (CPUStats, error) {
	ticks, err := clockticks.PerSecond()
	if err != nil {
		return CPUStats{}, err
	}
	return readFile(procStatPath, ticks)
}

func readFile(path string, ticks int64) (CPUStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return CPUStats{}, err
	}
	defer file.Close()

	// Only the aggregate "cpu" line matters; it is always first.
	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && err != io.EOF {
		return CPUStats{}, err
	}

	return parseStatLine(line, ticks)
}

// parseStatLine extracts user and system tick counts from the
// aggregate cpu line. The line is "cpu" followed by user, nice,
// system, and further counters; only the 2nd and 4th fields are used.
func parseStatLine(line string, ticks int64) (CPUStats, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "cpu" {
		return CPUStats{}, fmt.Errorf("unexpected /proc/stat format: %q", line)
	}

	user, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return CPUStats{}, fmt.Errorf("parse user ticks %q: %w", fields[1], err)
	}
	system, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return CPUStats{}, fmt.Errorf("parse system ticks %q: %w", fields[3], err)
	}

	return CPUStats{
		User:   ticksToDuration(user, ticks),
		System: ticksToDuration(system, ticks),
	}, nil
}
