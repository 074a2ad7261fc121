// Package paramlist encodes parameter tables as item lists:
// [ID: 4 bytes big-endian][Length: 1 byte][Value: Length bytes].
package paramlist

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/danmuck/termparam/internal/observability"
	"github.com/danmuck/termparam/internal/protocol/param"
)

const (
	ItemHeaderLen = 5
	MaxValueLen   = 0xFF
	MaxItems      = 0xFF
)

var (
	ErrShortItemHeader = errors.New("paramlist: short item header")
	ErrShortItemValue  = errors.New("paramlist: short item value")
	ErrValueTooLong    = errors.New("paramlist: value longer than 255 bytes")
	ErrTooManyItems    = errors.New("paramlist: more than 255 items")
	ErrCountMismatch   = errors.New("paramlist: item count mismatch")
	ErrShortBody       = errors.New("paramlist: short body")
	ErrTrailingBytes   = errors.New("paramlist: trailing bytes")
)

// Item is one encoded parameter entry.
type Item struct {
	ID    param.ID
	Value []byte
}

func AppendItem(dst []byte, it Item) ([]byte, error) {
	if len(it.Value) > MaxValueLen {
		return nil, fmt.Errorf("%w: %s has %d", ErrValueTooLong, it.ID, len(it.Value))
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(it.ID))
	dst = append(dst, byte(len(it.Value)))
	return append(dst, it.Value...), nil
}

func EncodeItem(it Item) ([]byte, error) {
	return AppendItem(make([]byte, 0, ItemHeaderLen+len(it.Value)), it)
}

func EncodeItems(items []Item) ([]byte, error) {
	out := make([]byte, 0)
	for _, it := range items {
		var err error
		out, err = AppendItem(out, it)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DecodeItems parses back-to-back items until payload is exhausted.
func DecodeItems(payload []byte) ([]Item, error) {
	items := make([]Item, 0)
	i := 0
	for i < len(payload) {
		if len(payload)-i < ItemHeaderLen {
			return nil, ErrShortItemHeader
		}
		id := param.ID(binary.BigEndian.Uint32(payload[i : i+4]))
		l := int(payload[i+4])
		i += ItemHeaderLen
		if len(payload)-i < l {
			return nil, fmt.Errorf("%w: %s wants %d, have %d", ErrShortItemValue, id, l, len(payload)-i)
		}
		val := make([]byte, l)
		copy(val, payload[i:i+l])
		i += l
		items = append(items, Item{ID: id, Value: val})
	}
	return items, nil
}

func GetItem(items []Item, id param.ID) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items lists the entries of t in ascending ID order.
func Items(t param.Table) []Item {
	ids := t.IDs()
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		raw, _ := t.Raw(id)
		items = append(items, Item{ID: id, Value: raw})
	}
	return items
}

// ToTable loads items into a fresh table; a repeated ID keeps its last value.
func ToTable(items []Item) (param.Table, error) {
	t := param.NewTable()
	for _, it := range items {
		if err := t.SetRaw(it.ID, it.Value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// EncodeTable produces a set-parameters body: [count: 1 byte][items...].
func EncodeTable(t param.Table) ([]byte, error) {
	items := Items(t)
	if len(items) > MaxItems {
		return nil, fmt.Errorf("%w: %d", ErrTooManyItems, len(items))
	}
	body, err := EncodeItems(items)
	if err != nil {
		return nil, err
	}
	out := append([]byte{byte(len(items))}, body...)
	observability.RecordItemList("encode", len(out))
	return out, nil
}

// DecodeTable parses a set-parameters body.
func DecodeTable(body []byte) (param.Table, error) {
	if len(body) < 1 {
		return nil, ErrShortBody
	}
	observability.RecordItemList("decode", len(body))
	return decodeCounted(int(body[0]), body[1:])
}

// EncodeQueryResponse produces a query-response body:
// [reply serial: 2 bytes][count: 1 byte][items...].
func EncodeQueryResponse(serial uint16, t param.Table) ([]byte, error) {
	body, err := EncodeTable(t)
	if err != nil {
		return nil, err
	}
	return append(binary.BigEndian.AppendUint16(nil, serial), body...), nil
}

func DecodeQueryResponse(body []byte) (uint16, param.Table, error) {
	if len(body) < 3 {
		return 0, nil, ErrShortBody
	}
	serial := binary.BigEndian.Uint16(body[0:2])
	t, err := DecodeTable(body[2:])
	if err != nil {
		return 0, nil, err
	}
	return serial, t, nil
}

// EncodeQueryIDs produces a query-specific-parameters body:
// [count: 1 byte][ID: 4 bytes]...
func EncodeQueryIDs(ids []param.ID) ([]byte, error) {
	if len(ids) > MaxItems {
		return nil, fmt.Errorf("%w: %d", ErrTooManyItems, len(ids))
	}
	out := make([]byte, 0, 1+4*len(ids))
	out = append(out, byte(len(ids)))
	for _, id := range ids {
		out = binary.BigEndian.AppendUint32(out, uint32(id))
	}
	return out, nil
}

func DecodeQueryIDs(body []byte) ([]param.ID, error) {
	if len(body) < 1 {
		return nil, ErrShortBody
	}
	n := int(body[0])
	rest := body[1:]
	if len(rest) < 4*n {
		return nil, fmt.Errorf("%w: want %d ids, have %d bytes", ErrCountMismatch, n, len(rest))
	}
	if len(rest) > 4*n {
		return nil, ErrTrailingBytes
	}
	ids := make([]param.ID, n)
	for i := range ids {
		ids[i] = param.ID(binary.BigEndian.Uint32(rest[4*i : 4*i+4]))
	}
	return ids, nil
}

func decodeCounted(count int, payload []byte) (param.Table, error) {
	items, err := DecodeItems(payload)
	if err != nil {
		return nil, err
	}
	if len(items) != count {
		return nil, fmt.Errorf("%w: header says %d, body has %d", ErrCountMismatch, count, len(items))
	}
	return ToTable(items)
}
