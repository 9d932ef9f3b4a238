package label

import (
	"github.com/jhoicas/lp-label-api/internal/domain"
)

// Límites independientes: copias por etiqueta y etiquetas por impresión masiva.
const (
	MinCopies     = 1
	MaxCopies     = 100
	MaxBulkLabels = 100
)

// PrintConfig configuración de impresión compartida por todas las etiquetas de una llamada.
type PrintConfig struct {
	Size      LabelSize
	Copies    int
	IncludeQR bool
}

// Códigos de error de configuración (se exponen tal cual en la API).
const (
	CodeInvalidSize        = "INVALID_LABEL_SIZE"
	CodeInvalidCopies      = "INVALID_COPIES"
	CodeInvalidRecordCount = "INVALID_LABEL_COUNT"
)

// ConfigError error de configuración detectado antes de generar cualquier bloque.
// errors.Is compara por Code y también coincide con domain.ErrInvalidInput.
type ConfigError struct {
	Code    string
	Field   string
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidCopies) para cualquier variante del mismo código.
func (e *ConfigError) Is(target error) bool {
	if target == domain.ErrInvalidInput {
		return true
	}
	t, ok := target.(*ConfigError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidSize = &ConfigError{Code: CodeInvalidSize, Field: "size", Message: "Invalid label size"}

	ErrInvalidCopies = &ConfigError{Code: CodeInvalidCopies, Field: "copies", Message: "Copies must be between 1 and 100"}
	ErrTooManyCopies = &ConfigError{Code: CodeInvalidCopies, Field: "copies", Message: "Maximum 100 copies allowed"}

	ErrNoRecords     = &ConfigError{Code: CodeInvalidRecordCount, Field: "records", Message: "At least one license plate is required"}
	ErrTooManyLabels = &ConfigError{Code: CodeInvalidRecordCount, Field: "records", Message: "Maximum 100 labels per bulk print"}
)

// validateConfig aplica las reglas de PrintConfig. Sin efectos secundarios.
func validateConfig(cfg PrintConfig) error {
	if !cfg.Size.Valid() {
		return ErrInvalidSize
	}
	if cfg.Copies > MaxCopies {
		return ErrTooManyCopies
	}
	if cfg.Copies < MinCopies {
		return ErrInvalidCopies
	}
	return nil
}

// ValidateCount valida el número de etiquetas de una impresión masiva.
func ValidateCount(n int) error {
	if n < 1 {
		return ErrNoRecords
	}
	if n > MaxBulkLabels {
		return ErrTooManyLabels
	}
	return nil
}
