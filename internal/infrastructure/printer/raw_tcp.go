// Package printer envía documentos ZPL a impresoras Zebra por RAW TCP (puerto 9100).
package printer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/time/rate"

	"github.com/jhoicas/lp-label-api/internal/domain"
)

// Encodings soportados para el flujo enviado a la impresora.
const (
	EncodingUTF8  = "utf-8"
	EncodingCP850 = "cp850"
)

// Options configuración del cliente.
type Options struct {
	Timeout    time.Duration // dial + escritura
	Encoding   string        // utf-8 | cp850
	RatePerSec float64       // envíos por segundo por impresora; <= 0 sin límite
}

// RawTCPClient implementa labels.PrinterClient. Seguro para uso concurrente.
type RawTCPClient struct {
	opts   Options
	dialer net.Dialer
	log    zerolog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter // addr → limiter
}

// NewRawTCPClient construye el cliente.
func NewRawTCPClient(opts Options, log zerolog.Logger) *RawTCPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	return &RawTCPClient{
		opts:     opts,
		dialer:   net.Dialer{Timeout: opts.Timeout},
		log:      log,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Send abre una conexión, escribe el documento completo y la cierra.
// Un envío por conexión: la impresora procesa los bloques en orden.
func (c *RawTCPClient) Send(ctx context.Context, addr, zpl string) (int, error) {
	payload, err := c.encode(zpl)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	if err := c.limiter(addr).Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: cola de %s: %v", domain.ErrPrinterTimeout, addr, err)
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return 0, mapNetError(addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	n, err := conn.Write(payload)
	if err != nil {
		return n, mapNetError(addr, err)
	}

	c.log.Debug().Str("addr", addr).Int("bytes", n).Msg("zpl enviado")
	return n, nil
}

func (c *RawTCPClient) encode(zpl string) ([]byte, error) {
	if c.opts.Encoding != EncodingCP850 {
		return []byte(zpl), nil
	}
	enc := encoding.ReplaceUnsupported(charmap.CodePage850.NewEncoder())
	out, err := enc.String(zpl)
	if err != nil {
		return nil, fmt.Errorf("printer: transcodificar a cp850: %w", err)
	}
	return []byte(out), nil
}

func (c *RawTCPClient) limiter(addr string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[addr]
	if !ok {
		limit := rate.Inf
		if c.opts.RatePerSec > 0 {
			limit = rate.Limit(c.opts.RatePerSec)
		}
		l = rate.NewLimiter(limit, 1)
		c.limiters[addr] = l
	}
	return l
}

// mapNetError traduce errores de red a los errores de dominio de impresión.
func mapNetError(addr string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %s: %v", domain.ErrPrinterTimeout, addr, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrPrinterOffline, addr, err)
}
