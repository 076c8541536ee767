//go:build linux

package cpustats

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shoenig/test/must"
)

func Test_parseStatLine(t *testing.T) {
	stats, err := parseStatLine("cpu 1000 200 500 300 77 0 41 0 0 0\n", 100)
	must.NoError(t, err)

	// 2nd field is user, 4th is system; the label, nice, and all
	// trailing counters are ignored.
	must.Eq(t, 10*time.Second, stats.User)
	must.Eq(t, 5*time.Second, stats.System)
}

func Test_parseStatLine_malformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "non-numeric user", line: "cpu abc 200 500 300\n"},
		{name: "negative system", line: "cpu 1000 200 -500 300\n"},
		{name: "wrong label", line: "intr 4705 150 1120 16250\n"},
		{name: "too few fields", line: "cpu 1000 200\n"},
		{name: "empty", line: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseStatLine(tc.line, 100)
			must.Error(t, err)
		})
	}
}

func Test_readFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat")
	content := "cpu  4705 150 1120 16250 520 0 175 0 0 0\n" +
		"cpu0 4705 150 1120 16250 520 0 175 0 0 0\n" +
		"intr 33124 22 8 0 0\n"
	must.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stats, err := readFile(path, 100)
	must.NoError(t, err)
	must.Eq(t, 47*time.Second+50*time.Millisecond, stats.User)
	must.Eq(t, 11*time.Second+200*time.Millisecond, stats.System)
}

func Test_readFile_missing(t *testing.T) {
	_, err := readFile(filepath.Join(t.TempDir(), "nope"), 100)
	must.ErrorIs(t, err, os.ErrNotExist)
}
