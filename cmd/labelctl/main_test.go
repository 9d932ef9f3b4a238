package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lpID = "6f1c2a8e-1b4d-4c2e-9a51-0d7e3f9b1a01"

func TestParseArgs_SinBanderasUsaConfiguracion(t *testing.T) {
	args, err := parseArgs([]string{"-company", "c1", lpID}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "c1", args.companyID)
	assert.Equal(t, []string{lpID}, args.request.LPIDs)
	assert.Nil(t, args.request.IncludeQR, "sin -qr decide LABEL_DEFAULT_INCLUDE_QR")
	assert.Nil(t, args.request.LabelSize)
	assert.Nil(t, args.request.Copies)
}

func TestParseArgs_BanderasExplicitas(t *testing.T) {
	args, err := parseArgs([]string{"-company", "c1", "-qr=false", "-size", "3x2", "-copies", "4", "-send", "zebra-1", lpID}, &bytes.Buffer{})
	require.NoError(t, err)

	require.NotNil(t, args.request.IncludeQR)
	assert.False(t, *args.request.IncludeQR)
	require.NotNil(t, args.request.LabelSize)
	assert.Equal(t, "3x2", *args.request.LabelSize)
	require.NotNil(t, args.request.Copies)
	assert.Equal(t, 4, *args.request.Copies)
	assert.Equal(t, "zebra-1", args.sendTo)

	args, err = parseArgs([]string{"-company", "c1", "-qr", lpID}, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, args.request.IncludeQR)
	assert.True(t, *args.request.IncludeQR)
}

func TestRun_ErroresDeUsoDevuelvenCodigo(t *testing.T) {
	cases := map[string][]string{
		"sin empresa":   {lpID},
		"sin LPs":       {"-company", "c1"},
		"bandera falsa": {"-nope"},
	}
	for name, argv := range cases {
		var stdout, stderr bytes.Buffer
		code := run(argv, &stdout, &stderr)
		assert.Equal(t, exitUsage, code, name)
		assert.Empty(t, stdout.String(), name)
		assert.NotEmpty(t, stderr.String(), name)
	}
}
