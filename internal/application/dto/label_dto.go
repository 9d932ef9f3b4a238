package dto

import "time"

// PrintOptions opciones comunes de impresión. Los campos nil toman el valor por defecto
// (tamaño y QR desde configuración, copias = 1).
type PrintOptions struct {
	LabelSize *string `json:"label_size"`
	Copies    *int    `json:"copies"`
	IncludeQR *bool   `json:"include_qr"`
}

// PrintLabelRequest entrada para imprimir la etiqueta de una LP.
type PrintLabelRequest struct {
	PrintOptions
}

// PrintLabelResponse documento ZPL de una etiqueta.
type PrintLabelResponse struct {
	ZPL              string    `json:"zpl"`
	LPNumber         string    `json:"lp_number"`
	ProductName      string    `json:"product_name"`
	Copies           int       `json:"copies"`
	LabelSize        string    `json:"label_size"`
	IncludeQR        bool      `json:"include_qr"`
	GeneratedAt      time.Time `json:"generated_at"`
	DownloadFilename string    `json:"download_filename"`
}

// BulkPrintRequest entrada para impresión masiva (1..100 LPs, misma configuración).
type BulkPrintRequest struct {
	LPIDs []string `json:"lp_ids"`
	PrintOptions
}

// BulkPrintResponse documento ZPL con un bloque por LP, en el orden pedido.
type BulkPrintResponse struct {
	ZPL              string    `json:"zpl"`
	LPNumbers        []string  `json:"lp_numbers"`
	LabelCount       int       `json:"label_count"`
	Copies           int       `json:"copies"`
	TotalLabels      int       `json:"total_labels"`
	LabelSize        string    `json:"label_size"`
	IncludeQR        bool      `json:"include_qr"`
	GeneratedAt      time.Time `json:"generated_at"`
	DownloadFilename string    `json:"download_filename"`
}

// ValidatePrintResponse resultado de la validación previa.
type ValidatePrintResponse struct {
	Valid     bool   `json:"valid"`
	LabelSize string `json:"label_size"`
	Copies    int    `json:"copies"`
	IncludeQR bool   `json:"include_qr"`
}

// LabelSizeDTO tamaño soportado con sus dimensiones en dots.
type LabelSizeDTO struct {
	Size       string  `json:"size"`
	WidthInch  float64 `json:"width_in"`
	HeightInch float64 `json:"height_in"`
	WidthDots  int     `json:"width_dots"`
	HeightDots int     `json:"height_dots"`
}

// PrintJobRequest envío de un documento ZPL a una impresora.
type PrintJobRequest struct {
	ZPL       string `json:"zpl"`
	PrinterID string `json:"printer_id"`
}

// PrintJobResponse resultado del envío.
type PrintJobResponse struct {
	PrinterID string    `json:"printer_id"`
	Labels    int       `json:"labels"`
	Bytes     int       `json:"bytes"`
	SentAt    time.Time `json:"sent_at"`
}
