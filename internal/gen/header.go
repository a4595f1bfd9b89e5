package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"boardgen/internal/pin"
	"boardgen/internal/plan"
)

// headerText is the fixed leading block: provenance, include guard,
// board identity, oscillators, supply voltage and the MCU type macro.
// Values are aligned so they start at column 40.
const headerText = `/*
    ChibiOS - Copyright (C) 2006..2016 Giovanni Di Sirio
    Licensed under the Apache License, Version 2.0 (the "License");
    you may not use this file except in compliance with the License.
    You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
    Unless required by applicable law or agreed to in writing, software
    distributed under the License is distributed on an "AS IS" BASIS,
    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
    See the License for the specific language governing permissions and
    limitations under the License.
*/

/*
    Generated by boardgen based on {{.Source}}
*/

#ifndef _BOARD_H_
#define _BOARD_H_


/*
    Setup for {{.Name}}
*/

/*
    Board identifier
*/
#define BOARD_{{.Name}}
#define BOARD_NAME                     "{{.Name}}"

/*
    Board oscillators-related settings.
*/
#if !defined(STM32_LSECLK)
#define STM32_LSECLK                   {{.LSEFreq}}U
#endif

#if !defined(STM32_HSECLK)
#define STM32_HSECLK                   {{.HSEFreq}}U
#endif

/*
    Board voltages
    Required for performance limits calculation.
*/
#define STM32_VDD                      {{.VDD}}U

/*
    MCU type as defined in the ST header.
*/
#define {{.MCUType}}

`

// ioPortSetup is the fixed bit-packing helper block between the line
// assignments and the per-port values.
const ioPortSetup = `/*
    I/O ports initial setup, this configuration is established soon after reset
    in the initialization code.
     Please refer to the STM32 Reference Manual for details.
*/
#define PIN_MODE_INPUT(n)              (0U << ((n) * 2U))
#define PIN_MODE_OUTPUT(n)             (1U << ((n) * 2U))
#define PIN_MODE_ALTERNATE(n)          (2U << ((n) * 2U))
#define PIN_MODE_ANALOG(n)             (3U << ((n) * 2U))
#define PIN_OD_LOW(n)                  (0U << (n))
#define PIN_OD_HIGH(n)                 (1U << (n))
#define PIN_OTYPE_PUSHPULL(n)          (0U << (n))
#define PIN_OTYPE_OPENDRAIN(n)         (1U << (n))
#define PIN_OSPEED_VERYLOW(n)          (0U << ((n) * 2U))
#define PIN_OSPEED_LOW(n)              (1U << ((n) * 2U))
#define PIN_OSPEED_MEDIUM(n)           (2U << ((n) * 2U))
#define PIN_OSPEED_HIGH(n)             (3U << ((n) * 2U))
#define PIN_PUPD_FLOATING(n)           (0U << ((n) * 2U))
#define PIN_PUPD_PULLUP(n)             (1U << ((n) * 2U))
#define PIN_PUPD_PULLDOWN(n)           (2U << ((n) * 2U))
#define PIN_AFIO_AF(n, v)              ((v) << (((n) % 8U) * 4U))

`

// footer closes the header. No trailing newline, matching the files
// boards ship with.
const footer = `#if !defined(_FROM_ASM_)
#ifdef __cplusplus
extern "C" {
#endif
  void boardInit(void);
#ifdef __cplusplus
}
#endif
#endif /* _FROM_ASM_ */

#endif /* _BOARD_H_ */`

var headerTmpl = template.Must(template.New("header").Parse(headerText))

// valContinuation splits an OR-expression across lines, resuming at
// column 41 under the opening parenthesis's operand.
var valContinuation = " | \\\n" + strings.Repeat(" ", 40)

type headerData struct {
	Source  string
	Name    string
	LSEFreq int
	HSEFreq int
	VDD     int
	MCUType string
}

// Render produces the complete board.h content for a plan.
func Render(p *plan.Plan) ([]byte, error) {
	var buf bytes.Buffer

	err := headerTmpl.Execute(&buf, headerData{
		Source:  p.Board.Source,
		Name:    p.Board.Name,
		LSEFreq: p.Board.LSEFreq,
		HSEFreq: p.Board.HSEFreq,
		VDD:     p.Board.VDD(),
		MCUType: p.Board.MCUType,
	})
	if err != nil {
		return nil, fmt.Errorf("executing header template: %w", err)
	}

	writeIOPins(&buf, p.Table)
	writeIOLines(&buf, p.Table)
	buf.WriteString(ioPortSetup)
	writeIOPorts(&buf, p.Table)
	buf.WriteString(footer)

	return buf.Bytes(), nil
}

// writeIOPins emits one GPIO<P>_<NAME> identifier macro per pin, port
// by port.
func writeIOPins(buf *bytes.Buffer, table *pin.Table) {
	buf.WriteString("/*\n    IO pins assignments.\n*/\n\n")

	for _, port := range table.Ports() {
		for _, rec := range table.Port(port) {
			fmt.Fprintf(buf, "#define GPIO%s_%s%s%dU\n",
				port, rec.Name, pad(25-len(rec.Name)), rec.Pos.Index)
		}
		buf.WriteByte('\n')
	}
}

// writeIOLines emits one LINE_<NAME> macro per declared pin, in sorted
// name order.
func writeIOLines(buf *bytes.Buffer, table *pin.Table) {
	buf.WriteString("/*\n    IO lines assignments.\n*/\n\n")

	for _, name := range table.Names() {
		rec, _ := table.Named(name)
		fmt.Fprintf(buf, "#define LINE_%s%sPAL_LINE(GPIO%s, %dU)\n",
			rec.Name, pad(26-len(rec.Name)), rec.Pos.Port, rec.Pos.Index)
	}
	buf.WriteByte('\n')
}

// writeIOPorts emits, per port, the pin summary comment and the
// VAL_GPIO<P>_* register value macros.
func writeIOPorts(buf *bytes.Buffer, table *pin.Table) {
	for _, port := range table.Ports() {
		records := table.Port(port)

		fmt.Fprintf(buf, "/*\n *  GPIO%s setup:\n *\n", port)
		for _, rec := range records {
			fmt.Fprintf(buf, " * P%s%-3d- %-29s(%s).\n", port, rec.Pos.Index, rec.Name, rec.Raw)
		}
		buf.WriteString("*/\n")

		writeValMacro(buf, port, "MODE", records, func(rec pin.Record) string {
			return rec.Attrs.Mode.String()
		})
		writeValMacro(buf, port, "OTYPE", records, func(rec pin.Record) string {
			return rec.Attrs.OType.String()
		})
		writeValMacro(buf, port, "OSPEED", records, func(rec pin.Record) string {
			return rec.Attrs.Speed.String()
		})
		writeValMacro(buf, port, "PUPD", records, func(rec pin.Record) string {
			return rec.Attrs.Pull.String()
		})
		writeValMacro(buf, port, "OD", records, func(rec pin.Record) string {
			return rec.Attrs.Level.String()
		})

		low := min(8, len(records))
		writeAFMacro(buf, port, "AFRL", records[:low])
		writeAFMacro(buf, port, "AFRH", records[low:])

		buf.WriteByte('\n')
	}
}

// writeValMacro emits one VAL_GPIO<P>_<FAMILY>R macro ORing the family
// value of every pin on the port.
func writeValMacro(buf *bytes.Buffer, port, family string, records []pin.Record, value func(pin.Record) string) {
	fmt.Fprintf(buf, "%-39s(", fmt.Sprintf("#define VAL_GPIO%s_%sR", port, family))

	for i, rec := range records {
		if i > 0 {
			buf.WriteString(valContinuation)
		}
		fmt.Fprintf(buf, "PIN_%s_%s(GPIO%s_%s)", family, value(rec), port, rec.Name)
	}

	buf.WriteString(")\n")
}

// writeAFMacro emits one alternate-function register macro over the
// given half of the port.
func writeAFMacro(buf *bytes.Buffer, port, reg string, records []pin.Record) {
	fmt.Fprintf(buf, "%-39s(", fmt.Sprintf("#define VAL_GPIO%s_%s", port, reg))

	for i, rec := range records {
		if i > 0 {
			buf.WriteString(valContinuation)
		}
		fmt.Fprintf(buf, "PIN_AFIO_AF(GPIO%s_%s, %dU)", port, rec.Name, rec.Attrs.AF)
	}

	buf.WriteString(")\n")
}

// pad returns n spaces, or a single space once a long name has overrun
// the value column, so macro name and value never fuse.
func pad(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}
