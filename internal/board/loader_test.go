package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBoard = `
name: ST_NUCLEO64_F401RE
mcutype: STM32F401xE
voltage: 3.3
lsefreq: 32768
hsefreq: 8000000
default: "INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING"
pins:
  LED_GREEN: "PA5, OUTPUT, LOWSPEED"
  UART_TX: "PA9, AF7, HIGHSPEED"
  PC13: "INPUT, PULLUP"
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nucleo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validBoard), 0o644))

	def, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ST_NUCLEO64_F401RE", def.Name)
	assert.Equal(t, "STM32F401xE", def.MCUType)
	assert.Equal(t, 32768, def.LSEFreq)
	assert.Equal(t, 8000000, def.HSEFreq)
	assert.Equal(t, path, def.Source)
	assert.Equal(t, 330, def.VDD())

	require.Len(t, def.Pins, 3)
	assert.Equal(t, PinDecl{Name: "LED_GREEN", Attrs: "PA5, OUTPUT, LOWSPEED"}, def.Pins[0])
	assert.Equal(t, PinDecl{Name: "UART_TX", Attrs: "PA9, AF7, HIGHSPEED"}, def.Pins[1])
	assert.Equal(t, PinDecl{Name: "PC13", Attrs: "INPUT, PULLUP"}, def.Pins[2])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read board file")
}

func TestParseMissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing name",
			in:   "mcutype: STM32F407VG\ndefault: INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING\n",
			want: `"name"`,
		},
		{
			name: "missing mcutype",
			in:   "name: B\ndefault: INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING\n",
			want: `"mcutype"`,
		},
		{
			name: "missing default",
			in:   "name: B\nmcutype: STM32F407VG\n",
			want: `"default"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse board YAML")
}

func TestParsePinsOptional(t *testing.T) {
	def, err := Parse([]byte("name: B\nmcutype: STM32F407VG\ndefault: INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING\n"))
	require.NoError(t, err)
	assert.Empty(t, def.Pins)

	// Oscillators and voltage default to zero.
	assert.Equal(t, 0, def.LSEFreq)
	assert.Equal(t, 0, def.HSEFreq)
	assert.Equal(t, 0, def.VDD())
}

func TestParsePinsKeepDocumentOrder(t *testing.T) {
	in := `
name: B
mcutype: STM32F407VG
default: INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING
pins:
  ZULU: PA1
  ALPHA: PA2
  MIKE: PA3
`
	def, err := Parse([]byte(in))
	require.NoError(t, err)

	names := make([]string, 0, len(def.Pins))
	for _, pin := range def.Pins {
		names = append(names, pin.Name)
	}

	assert.Equal(t, []string{"ZULU", "ALPHA", "MIKE"}, names)
}

func TestParseDuplicatePin(t *testing.T) {
	in := `
name: B
mcutype: STM32F407VG
default: INPUT, STARTLOW, PUSHPULL, VERYLOWSPEED, FLOATING
pins:
  LED: PA1
  BUTTON: PC13
  LED: PA2
`
	def, err := Parse([]byte(in))
	require.NoError(t, err)

	// The duplicate keeps its first position but takes the last value.
	require.Len(t, def.Pins, 2)
	assert.Equal(t, PinDecl{Name: "LED", Attrs: "PA2"}, def.Pins[0])
	assert.Equal(t, PinDecl{Name: "BUTTON", Attrs: "PC13"}, def.Pins[1])
}

func TestParsePinsWrongShape(t *testing.T) {
	in := "name: B\nmcutype: M\ndefault: INPUT\npins:\n  - PA1\n  - PA2\n"

	_, err := Parse([]byte(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping of pin name")
}

func TestVDD(t *testing.T) {
	tests := []struct {
		voltage float64
		want    int
	}{
		{3.3, 330},
		{1.8, 180},
		{2.5, 250},
		{5, 500},
		{0, 0},
	}

	for _, tt := range tests {
		def := Definition{Voltage: tt.voltage}
		assert.Equal(t, tt.want, def.VDD(), "voltage %v", tt.voltage)
	}
}
