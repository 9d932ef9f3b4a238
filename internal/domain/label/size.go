package label

// LabelSize tamaño físico de la etiqueta en pulgadas (ancho x alto).
type LabelSize string

const (
	Size4x6 LabelSize = "4x6"
	Size4x3 LabelSize = "4x3"
	Size3x2 LabelSize = "3x2"
)

// DPI resolución de las impresoras Zebra soportadas (8 dots/mm).
const DPI = 203

// Dimensions ancho y alto del área de impresión en dots.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// layout posiciones y tamaños de fuente por tamaño de etiqueta, en dots.
type layout struct {
	Dimensions
	Margin        int
	TitleFont     int
	BodyFont      int
	LineGap       int
	ModuleWidth   int // ^BY: ancho del módulo más angosto del CODE128
	BarcodeHeight int
	BarcodeGap    int // espacio bajo las barras para la línea de interpretación
	QRMag         int // ^BQ: factor de magnificación 1..10
	QRBelow       bool
	QRX           int // solo si !QRBelow
}

// layouts tabla inmutable tamaño → layout. Agregar un tamaño es un cambio de datos.
var layouts = map[LabelSize]layout{
	Size4x6: {
		Dimensions: Dimensions{Width: 812, Height: 1218},
		Margin:     40, TitleFont: 60, BodyFont: 40, LineGap: 20,
		ModuleWidth: 3, BarcodeHeight: 160, BarcodeGap: 60,
		QRMag: 6, QRBelow: true,
	},
	Size4x3: {
		Dimensions: Dimensions{Width: 812, Height: 609},
		Margin:     30, TitleFont: 44, BodyFont: 30, LineGap: 10,
		ModuleWidth: 2, BarcodeHeight: 90, BarcodeGap: 30,
		QRMag: 4, QRX: 600,
	},
	Size3x2: {
		Dimensions: Dimensions{Width: 609, Height: 406},
		Margin:     20, TitleFont: 30, BodyFont: 22, LineGap: 6,
		ModuleWidth: 1, BarcodeHeight: 60, BarcodeGap: 20,
		QRMag: 3, QRX: 440,
	},
}

// sizeOrder orden de SupportedSizes, de mayor a menor.
var sizeOrder = []LabelSize{Size4x6, Size4x3, Size3x2}

// SizeInfo describe un tamaño soportado.
type SizeInfo struct {
	Size       LabelSize  `json:"size"`
	WidthInch  float64    `json:"width_in"`
	HeightInch float64    `json:"height_in"`
	Dots       Dimensions `json:"dots"`
}

// SupportedSizes devuelve el catálogo de tamaños soportados.
func SupportedSizes() []SizeInfo {
	out := make([]SizeInfo, 0, len(sizeOrder))
	for _, s := range sizeOrder {
		l := layouts[s]
		out = append(out, SizeInfo{
			Size:       s,
			WidthInch:  float64(l.Width) / DPI,
			HeightInch: float64(l.Height) / DPI,
			Dots:       l.Dimensions,
		})
	}
	return out
}

// Valid indica si el tamaño pertenece a la enumeración soportada.
func (s LabelSize) Valid() bool {
	_, ok := layouts[s]
	return ok
}

// Dimensions devuelve las dimensiones en dots; ok=false si el tamaño no existe.
func (s LabelSize) Dimensions() (Dimensions, bool) {
	l, ok := layouts[s]
	return l.Dimensions, ok
}
