package localddb

import (
	"bytes"

	"github.com/hibiscushealth/backend/table"
)

// Key layout, all components separated by 0x00:
//
//	doc   [collection] 0x00 [id]
//	index [collection] 0x00 $idx: [indexName] 0x00 [value] 0x00 [sort] 0x00 [id]
//
// Index entries hold the record id as their value; the sort component
// makes a plain prefix iteration come back in index sort order. Null
// bytes inside components are escaped to keep the separator unambiguous.
const keySeparator byte = 0x00

const indexMarker = "$idx:"

func docKey(coll string, id string) []byte {
	var buf bytes.Buffer
	buf.WriteString(coll)
	buf.WriteByte(keySeparator)
	buf.Write(escapeComponent([]byte(id)))
	return buf.Bytes()
}

func docPrefix(coll string) []byte {
	return append([]byte(coll), keySeparator)
}

func indexKey(coll string, idx table.SecondaryIndex, value, sort, id string) []byte {
	buf := bytes.NewBuffer(indexPrefix(coll, idx, value))
	buf.Write(escapeComponent([]byte(sort)))
	buf.WriteByte(keySeparator)
	buf.Write(escapeComponent([]byte(id)))
	return buf.Bytes()
}

func indexPrefix(coll string, idx table.SecondaryIndex, value string) []byte {
	var buf bytes.Buffer
	buf.WriteString(coll)
	buf.WriteByte(keySeparator)
	buf.WriteString(indexMarker)
	buf.WriteString(idx.Name)
	buf.WriteByte(keySeparator)
	buf.Write(escapeComponent([]byte(value)))
	buf.WriteByte(keySeparator)
	return buf.Bytes()
}

// escapeComponent escapes null bytes so separators stay unambiguous:
// 0x01 0x01 encodes a literal 0x00, 0x01 0x02 a literal 0x01.
func escapeComponent(b []byte) []byte {
	if !bytes.ContainsAny(b, "\x00\x01") {
		return b
	}
	var buf bytes.Buffer
	for _, c := range b {
		switch c {
		case 0x00:
			buf.Write([]byte{0x01, 0x01})
		case 0x01:
			buf.Write([]byte{0x01, 0x02})
		default:
			buf.WriteByte(c)
		}
	}
	return buf.Bytes()
}
