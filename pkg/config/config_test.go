package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PRINTERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4x6", cfg.Labels.DefaultSize)
	assert.True(t, cfg.Labels.DefaultIncludeQR)
	assert.Equal(t, 2*time.Second, cfg.Printers.Timeout)
	assert.Equal(t, "utf-8", cfg.Printers.Encoding)
	assert.Empty(t, cfg.Printers.Addrs)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_Impresoras(t *testing.T) {
	t.Setenv("PRINTERS", "zebra-1=10.0.0.5:9100, zebra-2=10.0.0.6")
	t.Setenv("PRINTER_DEFAULT", "zebra-2")
	t.Setenv("PRINTER_TIMEOUT_MS", "500")
	t.Setenv("PRINTER_ENCODING", "CP850")
	t.Setenv("LABEL_DEFAULT_SIZE", "4x3")
	t.Setenv("LABEL_DEFAULT_INCLUDE_QR", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"zebra-1": "10.0.0.5:9100",
		"zebra-2": "10.0.0.6:9100",
	}, cfg.Printers.Addrs, "sin puerto se asume 9100")
	assert.Equal(t, []string{"zebra-1", "zebra-2"}, cfg.Printers.IDs())
	assert.Equal(t, "zebra-2", cfg.Printers.DefaultID)
	assert.Equal(t, 500*time.Millisecond, cfg.Printers.Timeout)
	assert.Equal(t, "cp850", cfg.Printers.Encoding)
	assert.Equal(t, "4x3", cfg.Labels.DefaultSize)
	assert.False(t, cfg.Labels.DefaultIncludeQR)
}

func TestLoad_ImpresoraPorDefectoDesconocida(t *testing.T) {
	t.Setenv("PRINTERS", "zebra-1=10.0.0.5:9100")
	t.Setenv("PRINTER_DEFAULT", "zebra-9")

	_, err := Load()
	assert.ErrorContains(t, err, "PRINTER_DEFAULT")
}

func TestParsePrinters_Invalido(t *testing.T) {
	_, err := parsePrinters("zebra-1")
	assert.Error(t, err)

	_, err = parsePrinters("=10.0.0.5:9100")
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "wh", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/wh?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
