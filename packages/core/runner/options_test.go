package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/rfcli/packages/core/target"
)

func loaded(index int, name string, entries ...target.Entry) *target.Loaded {
	return &target.Loaded{
		Index:   index,
		Target:  &target.Target{Name: name},
		Entries: entries,
	}
}

func TestBuildOptions(t *testing.T) {
	t.Run("no targets", func(t *testing.T) {
		opts := BuildOptions(nil, Options{OutputDir: "out"})
		assert.Equal(t, []string{
			"-d", "out",
			"-b", "debug.txt",
			"--loglevel", "TRACE:INFO",
			"--nostatusrc",
		}, opts)
	})

	t.Run("targets in order", func(t *testing.T) {
		opts := BuildOptions([]*target.Loaded{
			loaded(1, "lab", target.Entry{Key: "host", Text: "10.0.0.1"}),
			loaded(2, "db", target.Entry{Key: "auth.user", Text: "admin"}),
		}, Options{OutputDir: "out", DebugFile: "trace.txt", LogLevel: "DEBUG"})

		assert.Equal(t, []string{
			"--variable", "RFCLI_TARGET_1:lab",
			"--variable", "RFCLI_TARGET_1.host:10.0.0.1",
			"--variable", "RFCLI_TARGET_2:db",
			"--variable", "RFCLI_TARGET_2.auth.user:admin",
			"-d", "out",
			"-b", "trace.txt",
			"--loglevel", "DEBUG",
			"--nostatusrc",
		}, opts)
	})

	t.Run("defaults fill empty options", func(t *testing.T) {
		opts := BuildOptions(nil, Options{})
		assert.Equal(t, []string{"-d", DefaultOutputDir}, opts[:2])
	})
}

func TestStripStatusRC(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", []string{"tests"}, []string{"tests"}},
		{"one", []string{"--nostatusrc", "tests"}, []string{"tests"}},
		{"twice", []string{"-i", "smoke", "--nostatusrc", "tests", "--nostatusrc"}, []string{"-i", "smoke", "tests"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripStatusRC(tt.args))
		})
	}
}

func TestOutputDirectory(t *testing.T) {
	always := func(string) bool { return true }
	never := func(string) bool { return false }

	assert.Equal(t, "mine", OutputDirectory("mine", "/home/u", always))
	assert.Equal(t, "/home/u/public_html/rfcli", OutputDirectory("", "/home/u", always))
	assert.Equal(t, DefaultOutputDir, OutputDirectory("", "/home/u", never))
	assert.Equal(t, DefaultOutputDir, OutputDirectory("", "", always))
}

func TestUnderPublicHTML(t *testing.T) {
	assert.True(t, UnderPublicHTML("/home/u/public_html/rfcli"))
	assert.False(t, UnderPublicHTML("rfcli_output"))
	assert.False(t, UnderPublicHTML("/home/u/public_html"))
	assert.False(t, UnderPublicHTML("/srv/my_public_html/x"))
}

func TestLogsURL(t *testing.T) {
	assert.Equal(t, "http://lab.example.com/~tester/rfcli/log.html", LogsURL("lab.example.com", "tester"))
	assert.Equal(t, "http://lab.example.com/~/rfcli/log.html", LogsURL("lab.example.com", ""))
}
