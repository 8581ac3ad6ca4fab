package main

import (
	"bytes"
	"testing"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Now == nil || env.Stdout == nil || env.Stderr == nil || env.SetMaxProcs == nil {
		t.Errorf("DefaultEnv() has nil fields: %+v", env)
	}
}

func TestVerboseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	verboseLogger(&buf, false)("maxprocs: %d", 4)
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}

	verboseLogger(&buf, true)("maxprocs: %d", 4)
	if buf.String() != "maxprocs: 4\n" {
		t.Errorf("verbose logger wrote %q", buf.String())
	}
}
