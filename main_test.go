package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/config"
)

func writeFixture(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func testContext(buf *bytes.Buffer) *Context {
	return &Context{
		Config: config.NewConfig(),
		Out:    buf,
	}
}

func TestStructureCmd_DefaultBounds(t *testing.T) {
	path := writeFixture(t, "match.json", `{"a": 1, "b": [1, 2, 3, 4]}`)
	var buf bytes.Buffer

	cmd := &StructureCmd{Input: path, MaxDepth: -1, MaxItems: -1}
	err := cmd.Run(testContext(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"a": "int: 1"`)
	assert.Contains(t, out, `"int: 1"`)
	assert.Contains(t, out, `"<...2 more items>"`)
}

func TestStructureCmd_FlagOverrides(t *testing.T) {
	path := writeFixture(t, "deep.json", `{"outer": {"inner": {"leaf": 1}}}`)
	var buf bytes.Buffer

	cmd := &StructureCmd{Input: path, MaxDepth: 1, MaxItems: -1}
	err := cmd.Run(testContext(&buf))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"outer": "<depth_limit_reached: object>"`)
}

func TestStructureCmd_Hints(t *testing.T) {
	path := writeFixture(t, "match.json", `{"matchId": "NA1_1", "gameDuration": 1845}`)
	var buf bytes.Buffer

	cmd := &StructureCmd{Input: path, MaxDepth: -1, MaxItems: -1, Hints: true}
	err := cmd.Run(testContext(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SCHEMA HINTS")
	assert.Contains(t, out, "match_id")
	assert.Contains(t, out, "game_duration")
}

func TestStructureCmd_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	cmd := &StructureCmd{Input: filepath.Join(t.TempDir(), "nope.json"), MaxDepth: -1, MaxItems: -1}
	err := cmd.Run(testContext(&buf))
	assert.Error(t, err)
}

func TestMatchCmd(t *testing.T) {
	path := writeFixture(t, "match.json", `{
		"metadata": {"matchId": "NA1_42", "participants": ["puuid-1"]},
		"info": {
			"gameMode": "ARAM",
			"gameDuration": 1200,
			"participants": [{"puuid": "puuid-1", "championName": "Lux", "kills": 12, "win": true}],
			"teams": [{"teamId": 100, "win": true, "objectives": {"champion": {"kills": 30}}}]
		}
	}`)
	var buf bytes.Buffer

	cmd := &MatchCmd{Input: path}
	err := cmd.Run(testContext(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Analyzing: "+path)
	assert.Contains(t, out, "gameMode: ARAM")
	assert.Contains(t, out, "gameDuration: 1200s (20min)")
	assert.Contains(t, out, "championName: Lux")
}

func TestTimelineCmd(t *testing.T) {
	path := writeFixture(t, "MatchTimeline.json", `{
		"info": {
			"frameInterval": 60000,
			"participants": [{"participantId": 1, "puuid": "puuid-1"}],
			"frames": [{"timestamp": 0, "events": [{"type": "PAUSE_END", "timestamp": 0}]}]
		}
	}`)
	var buf bytes.Buffer

	cmd := &TimelineCmd{Input: path}
	err := cmd.Run(testContext(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "frameInterval: 60000ms")
	assert.Contains(t, out, "PAUSE_END: 1")
}

func TestChallengesCmd_MissingChallenges(t *testing.T) {
	path := writeFixture(t, "match.json", `{"info": {"participants": [{"puuid": "x"}]}}`)
	var buf bytes.Buffer

	cmd := &ChallengesCmd{Input: path}
	err := cmd.Run(testContext(&buf))
	assert.Error(t, err)
}
