package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 100, 10)

	tracker.Start()
	assert.True(t, tracker.started, "should be started")

	tracker.Increment(25)
	tracker.Increment(25)
	tracker.Increment(50)

	elapsed := tracker.Elapsed()
	assert.Greater(t, elapsed, time.Duration(0), "elapsed time should be positive")

	output := buf.String()
	assert.Contains(t, output, "100/100", "should show completion")
	assert.Contains(t, output, "100.0%", "should show 100%")
}

func TestTracker_Update(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 1000, 100)

	tracker.Start()
	tracker.Update(250)
	tracker.Update(500)

	output := buf.String()
	assert.True(t, len(output) > 0, "should have progress output")
}

func TestTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Update(75)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "100/100", "finish should set to total")
	assert.Contains(t, output, "100.0%", "finish should show 100%")
	assert.Contains(t, output, "\n", "finish should print newline")
}

func TestTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 100, 10)

	// Updates before Start are ignored
	tracker.Update(50)
	tracker.Increment(25)
	tracker.Finish()

	assert.Empty(t, buf.String(), "should produce no output before Start")
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestTracker_CapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, 10, 1)

	tracker.Start()
	tracker.Increment(25)

	output := buf.String()
	assert.Contains(t, output, "10/10", "progress should cap at total")
}
