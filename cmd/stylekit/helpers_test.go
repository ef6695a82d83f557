package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const demoStylesheet = `version: "1.0"
name: "Demo"
theme:
  colors:
    brand: "#ff00aa"
  breakpoints:
    md: 70
components:
  - name: Card
    base: box
    style:
      p: 1
      border: rounded
      hover:
        borderColor: brand
      media:
        md:
          p: 2
        tablet:
          bold: true
  - name: AlertCard
    base: Card
    computed:
      - when:
          tone: danger
        style:
          bg: danger
`

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStylesheet(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stylesheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
