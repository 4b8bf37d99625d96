package main

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/bodgit/printgrid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestExit(t *testing.T) {
	hook := test.NewGlobal()
	out := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() {
		logrus.SetOutput(out)
		hook.Reset()
	})

	assert.NoError(t, exit(nil))
	assert.Nil(t, hook.LastEntry())

	assert.NoError(t, exit(fmt.Errorf("print: %w", printgrid.ErrNoInput)))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, printgrid.ErrNoInput.Error())

	hook.Reset()
	err := exit(errors.New("boom"))
	var ec cli.ExitCoder
	require.True(t, errors.As(err, &ec))
	assert.Equal(t, 1, ec.ExitCode())
	assert.Nil(t, hook.LastEntry())
}
