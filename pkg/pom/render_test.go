package pom_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeutil/deobf/pkg/pom"
	"github.com/forgeutil/deobf/pkg/testutil"
)

func TestRender(t *testing.T) {
	dep := testutil.External(t, "com.example:lib:1.0", "lib")
	require.NoError(t, pom.AttachArtifact(dep))

	var buf bytes.Buffer
	err := pom.Render(dep, &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<modelVersion>4.0.0</modelVersion>")
	assert.Contains(t, out, "<groupId>com.example</groupId>")
	assert.Contains(t, out, "<artifactId>lib</artifactId>")
	assert.Contains(t, out, "<version>1.0</version>")
	assert.Contains(t, out, "<packaging>jar</packaging>")
}

func TestRenderWithoutArtifacts(t *testing.T) {
	dep := testutil.External(t, "com.example:bare:2.0")

	var buf bytes.Buffer
	err := pom.Render(dep, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<packaging>jar</packaging>")
}
