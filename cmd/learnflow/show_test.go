package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mlindborg/learnflow/internal/testutil"
)

const historyFixture = `{
    "Goal": [
        {
            "entry_type": "Goal",
            "text": "Finish Week 1",
            "timestamp": "2025-09-17T14:30:05",
            "mood": "",
            "status": "in-progress"
        }
    ],
    "Notes": [
        {
            "entry_type": "Notes",
            "text": "Felt stuck debugging",
            "timestamp": "2025-09-17T15:00:00",
            "mood": "stuck"
        }
    ]
}`

func TestSummaryCommand_Execute(t *testing.T) {
	color.NoColor = true
	tmpDir := useTestConfig(t)
	testutil.WriteHistoryFile(t, tmpDir, historyFixture)

	output := executeCommand(t, newSummaryCommand())
	assert.Equal(t,
		"Goal: Finish Week 1\nNotes: Felt stuck debugging [Mood: stuck]\n",
		output)
}

func TestSummaryCommand_Execute_Empty(t *testing.T) {
	color.NoColor = true
	useTestConfig(t)

	output := executeCommand(t, newSummaryCommand())
	assert.Equal(t, "No entries yet.\n", output)
}

func TestHistoryCommand_Execute(t *testing.T) {
	color.NoColor = true
	tmpDir := useTestConfig(t)
	testutil.WriteHistoryFile(t, tmpDir, historyFixture)

	t.Run("all categories", func(t *testing.T) {
		output := executeCommand(t, newHistoryCommand())
		assert.Equal(t, "Goal\n"+
			"  [2025-09-17T14:30:05] Finish Week 1 (Status: in-progress)\n"+
			"Notes\n"+
			"  [2025-09-17T15:00:00] Felt stuck debugging (Mood: stuck)\n",
			output)
	})

	t.Run("single category", func(t *testing.T) {
		output := executeCommand(t, newHistoryCommand(), "Notes")
		assert.Equal(t,
			"Notes\n  [2025-09-17T15:00:00] Felt stuck debugging (Mood: stuck)\n",
			output)
	})
}

func TestLatestCommand_Execute(t *testing.T) {
	color.NoColor = true
	tmpDir := useTestConfig(t)
	testutil.WriteHistoryFile(t, tmpDir, historyFixture)

	assert.Equal(t, "Goal: Finish Week 1\n",
		executeCommand(t, newLatestCommand(), "Goal"))
	assert.Equal(t, "Skill: (none)\n",
		executeCommand(t, newLatestCommand(), "Skill"))
}
