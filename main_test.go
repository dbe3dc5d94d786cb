package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-bouts/truewind/batch"
)

func TestParseParams(t *testing.T) {
	p, err := parseParams([]string{"aws=10", "awa=34", "bspd=5.9", "heading=8", "K=10", "speedunit=kt", "roll=-5"})
	require.NoError(t, err)

	assert.Equal(t, 10.0, *p.Aws)
	assert.Equal(t, 34.0, *p.Awa)
	assert.Equal(t, 5.9, *p.Bspd)
	assert.Equal(t, 8.0, *p.Heading)
	assert.Equal(t, 10.0, *p.K)
	assert.Equal(t, -5.0, *p.Roll)
	assert.Equal(t, "kt", *p.SpeedUnit)
	assert.Nil(t, p.Sog)
	assert.Nil(t, p.Pitch)

	_, err = parseParams([]string{"aws"})
	assert.Error(t, err)

	_, err = parseParams([]string{"wind=10"})
	assert.EqualError(t, err, "unknown parameter 'wind'")

	_, err = parseParams([]string{"aws=ten"})
	assert.Error(t, err)
}

func TestYamlParser(t *testing.T) {
	values := map[string]string{}
	set := func(name, value string) error {
		values[name] = value
		return nil
	}

	err := yamlParser(strings.NewReader("format: yaml\nworkers: 4\nfold: true\nlog-level: debug\n"), set)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"format": "yaml", "workers": "4", "fold": "true", "log-level": "debug"}, values)

	assert.NoError(t, yamlParser(strings.NewReader(""), set))
	assert.Error(t, yamlParser(strings.NewReader("format: [json, yaml]\n"), set))
}

func TestParseConfig(t *testing.T) {
	c, err := parseConfig([]string{"-format", "text", "aws=10", "awa=20"})
	require.NoError(t, err)
	assert.Equal(t, "text", c.format)
	assert.Equal(t, "-", c.input)
	assert.Equal(t, []string{"aws=10", "awa=20"}, c.args)

	_, err = parseConfig([]string{"-format", "xml"})
	assert.Error(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "truewind.yaml")
	require.NoError(t, os.WriteFile(file, []byte("format: yaml\nworkers: 3\nfold: true\n"), 0644))

	c, err = parseConfig([]string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.format)
	assert.Equal(t, 3, c.workers)
	assert.True(t, c.fold)

	t.Setenv("TRUEWIND_LOG_LEVEL", "debug")
	c, err = parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.logLevel)
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, setupLogger("debug", "json"))
	assert.NoError(t, setupLogger("info", "text"))
	assert.Error(t, setupLogger("loud", "text"))
	assert.Error(t, setupLogger("info", "xml"))
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"aws":15,"awa":45,"bspd":6,"heading":180}
{"aws":15}
`), 0644))

	stats, err := run(context.Background(), config{input: input, output: output, format: "json"})
	require.NoError(t, err)
	assert.Equal(t, batch.Stats{Records: 2, Failed: 1}, stats)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, rows, 2)

	var l batch.Line
	require.NoError(t, json.Unmarshal([]byte(rows[0]), &l))
	require.NotNil(t, l.Result)
	assert.InDelta(t, 11.56, l.Result.TWS, 0.01)
}

func TestRunArgs(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.yaml")

	stats, err := run(context.Background(), config{
		output: output,
		format: "yaml",
		fold:   true,
		args:   []string{"aws=10", "awa=0", "bspd=5", "heading=355", "variation=10"},
	})
	require.NoError(t, err)
	assert.Equal(t, batch.Stats{Records: 1}, stats)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "twd: 5")
}
