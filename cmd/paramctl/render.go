package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/termparam/internal/protocol/param"
	"github.com/pterm/pterm"
)

func hexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// parseHex accepts "7E 01 02", "7e0102" and "0x7e0102".
func parseHex(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex body: %w", err)
	}
	return b, nil
}

func tableRows(t param.Table) pterm.TableData {
	data := pterm.TableData{{"ID", "Name", "Kind", "Len", "Value"}}
	for _, id := range t.IDs() {
		raw, _ := t.Raw(id)
		name, kind, value := "-", "?", hexString(raw)
		if spec, ok := param.Lookup(id); ok {
			name = spec.Name
			kind = spec.Kind.String()
			if v, err := param.Decode(spec.Kind, raw); err == nil {
				value = v.String()
				if spec.Unit != "" {
					value += " " + spec.Unit
				}
				if id == param.GNSSBaudRate {
					if bps := param.GNSSBaud(v.U8).BitsPerSecond(); bps > 0 {
						value += fmt.Sprintf(" (%d bps)", bps)
					}
				}
			}
		}
		data = append(data, []string{
			fmt.Sprintf("0x%04X", uint32(id)),
			name,
			kind,
			strconv.Itoa(len(raw)),
			value,
		})
	}
	return data
}

func renderTable(t param.Table) error {
	return pterm.DefaultTable.WithHasHeader().WithData(tableRows(t)).Render()
}
