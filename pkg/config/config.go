package config

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Labels   LabelsConfig
	Printers PrintersConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Los tokens los emite el servicio de identidad.
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LabelsConfig valores por defecto de impresión cuando la petición no los trae.
type LabelsConfig struct {
	DefaultSize      string
	DefaultIncludeQR bool
}

// PrintersConfig impresoras Zebra alcanzables por RAW TCP (puerto 9100).
type PrintersConfig struct {
	Addrs      map[string]string // id → host:port
	DefaultID  string
	Timeout    time.Duration
	Encoding   string // utf-8 | cp850
	RatePerSec float64
}

// IDs devuelve los ids de impresora ordenados.
func (c PrintersConfig) IDs() []string {
	ids := make([]string, 0, len(c.Addrs))
	for id := range c.Addrs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, PRINTERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	printers, err := parsePrinters(getString(v, "PRINTERS", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lp-label-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "warehouse"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "lp-label-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Labels: LabelsConfig{
			DefaultSize:      getString(v, "LABEL_DEFAULT_SIZE", "4x6"),
			DefaultIncludeQR: getBool(v, "LABEL_DEFAULT_INCLUDE_QR", true),
		},
		Printers: PrintersConfig{
			Addrs:      printers,
			DefaultID:  getString(v, "PRINTER_DEFAULT", ""),
			Timeout:    time.Duration(getInt(v, "PRINTER_TIMEOUT_MS", 2000)) * time.Millisecond,
			Encoding:   strings.ToLower(getString(v, "PRINTER_ENCODING", "utf-8")),
			RatePerSec: getFloat(v, "PRINTER_RATE_PER_SEC", 5),
		},
	}

	if cfg.Printers.DefaultID != "" {
		if _, ok := cfg.Printers.Addrs[cfg.Printers.DefaultID]; !ok {
			return nil, fmt.Errorf("config: PRINTER_DEFAULT %q no está en PRINTERS", cfg.Printers.DefaultID)
		}
	}
	switch cfg.Printers.Encoding {
	case "utf-8", "cp850":
	default:
		return nil, fmt.Errorf("config: PRINTER_ENCODING %q no soportado (utf-8|cp850)", cfg.Printers.Encoding)
	}

	return cfg, nil
}

// parsePrinters interpreta "zebra-1=10.0.0.5:9100,zebra-2=10.0.0.6:9100".
func parsePrinters(s string) (map[string]string, error) {
	out := map[string]string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, addr, ok := strings.Cut(item, "=")
		id, addr = strings.TrimSpace(id), strings.TrimSpace(addr)
		if !ok || id == "" || addr == "" {
			return nil, fmt.Errorf("config: PRINTERS entrada inválida %q (formato id=host:port)", item)
		}
		if !strings.Contains(addr, ":") {
			addr += ":9100"
		}
		out[id] = addr
	}
	return out, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
