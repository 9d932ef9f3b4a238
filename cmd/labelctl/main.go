// labelctl genera el documento ZPL de una o varias LPs desde la línea de comandos
// y opcionalmente lo envía a una impresora configurada en PRINTERS.
//
// Uso:
//
//	go run ./cmd/labelctl -company <uuid> [-size 4x6] [-copies 1] [-qr=true] [-out labels.zpl] [-send zebra-1] <lp-id>...
//
// Sin -out ni -send escribe el ZPL en stdout. Sin -size ni -qr se usan
// LABEL_DEFAULT_SIZE y LABEL_DEFAULT_INCLUDE_QR, igual que la API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/application/labels"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
	"github.com/jhoicas/lp-label-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lp-label-api/internal/infrastructure/printer"
	"github.com/jhoicas/lp-label-api/pkg/config"
	"github.com/jhoicas/lp-label-api/pkg/logger"
)

// Códigos de salida.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cliArgs struct {
	companyID string
	outPath   string
	sendTo    string
	request   dto.BulkPrintRequest
}

var errUsage = errors.New("uso: labelctl -company <uuid> [opciones] <lp-id>...")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run ejecuta el comando y devuelve el código de salida; los defer se
// ejecutan siempre antes de que main llame a os.Exit.
func run(argv []string, stdout, stderr io.Writer) int {
	args, err := parseArgs(argv, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(stderr, "cargar configuración", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Out: stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fail(stderr, "conexión a PostgreSQL", err)
	}
	defer pool.Close()

	printUC := labels.NewPrintUseCase(
		postgres.NewLicensePlateRepository(pool),
		label.NewZPLGenerator(),
		labels.Defaults{Size: label.LabelSize(cfg.Labels.DefaultSize), IncludeQR: cfg.Labels.DefaultIncludeQR},
		log.Component("labelctl"),
	)

	out, err := printUC.PrintBulk(ctx, args.companyID, args.request)
	if err != nil {
		return fail(stderr, "generar etiquetas", err)
	}

	switch {
	case args.sendTo != "":
		client := printer.NewRawTCPClient(printer.Options{
			Timeout:    cfg.Printers.Timeout,
			Encoding:   cfg.Printers.Encoding,
			RatePerSec: cfg.Printers.RatePerSec,
		}, log.Component("printer"))
		dispatch := labels.NewDispatchUseCase(client, cfg.Printers.Addrs, cfg.Printers.DefaultID, log.Component("labelctl"))
		job, err := dispatch.Send(ctx, dto.PrintJobRequest{ZPL: out.ZPL, PrinterID: args.sendTo})
		if err != nil {
			return fail(stderr, "enviar a impresora", err)
		}
		fmt.Fprintf(stderr, "Enviado a %s: %d etiquetas (%d copias c/u), %d bytes\n",
			job.PrinterID, job.Labels, out.Copies, job.Bytes)
	case args.outPath != "":
		if err := os.WriteFile(args.outPath, []byte(out.ZPL), 0o644); err != nil {
			return fail(stderr, "escribir archivo", err)
		}
		fmt.Fprintf(stderr, "Generado %s: %d etiquetas, %d en total\n", args.outPath, out.LabelCount, out.TotalLabels)
	default:
		fmt.Fprint(stdout, out.ZPL)
	}
	return exitOK
}

// parseArgs lee las banderas. -size, -copies y -qr solo pasan a la petición
// cuando se indicaron; si no, decide la configuración compartida con la API.
func parseArgs(argv []string, stderr io.Writer) (*cliArgs, error) {
	fs := flag.NewFlagSet("labelctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	companyID := fs.String("company", "", "ID de la empresa (tenant)")
	size := fs.String("size", "", "tamaño de etiqueta: 4x6 | 4x3 | 3x2 (por defecto LABEL_DEFAULT_SIZE)")
	copies := fs.Int("copies", 1, "copias por etiqueta (1..100)")
	includeQR := fs.Bool("qr", false, "incluir código QR (por defecto LABEL_DEFAULT_INCLUDE_QR)")
	outPath := fs.String("out", "", "archivo de salida .zpl")
	sendTo := fs.String("send", "", "id de impresora a la que enviar el documento")
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if *companyID == "" || fs.NArg() == 0 {
		fs.Usage()
		return nil, errUsage
	}

	args := &cliArgs{
		companyID: *companyID,
		outPath:   *outPath,
		sendTo:    *sendTo,
		request:   dto.BulkPrintRequest{LPIDs: fs.Args()},
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			args.request.LabelSize = size
		case "copies":
			args.request.Copies = copies
		case "qr":
			args.request.IncludeQR = includeQR
		}
	})
	return args, nil
}

func fail(stderr io.Writer, step string, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", step, err)
	return exitError
}
