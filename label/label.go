// Package label implements the WHATWG "get an encoding" label resolver:
// given a caller-supplied label string, normalize it and return the
// matching encoding handle, or none.
package label

import (
	"strings"

	textenc "github.com/textcodec/encoding"
)

// Resolve normalizes label (trims ASCII whitespace, ASCII-lowercases) and
// looks it up against the WHATWG label table. Four labels resolve to the
// Replacement encoding, an anti-smuggling device for ISO-2022 variants
// this library does not implement.
func Resolve(label string) (*textenc.Encoding, bool) {
	norm := normalize(label)
	enc, ok := labels[norm]
	return enc, ok
}

// normalize trims the ASCII whitespace set space/tab/LF/CR/FF and
// ASCII-lowercases. Non-ASCII bytes are left untouched so that, e.g.,
// U+212A KELVIN SIGN never matches "k".
func normalize(s string) string {
	s = strings.Trim(s, " \t\n\r\f")
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

var labels = buildLabels()

func buildLabels() map[string]*textenc.Encoding {
	m := map[string]*textenc.Encoding{}
	add := func(enc *textenc.Encoding, names ...string) {
		for _, n := range names {
			m[n] = enc
		}
	}

	add(textenc.UTF8, "unicode-1-1-utf-8", "utf-8", "utf8")
	add(textenc.ASCII, "ansi_x3.4-1968", "ascii", "us-ascii", "iso-ir-6")
	add(textenc.ISO88591, "csisolatin1", "iso-8859-1", "iso-ir-100", "iso8859-1",
		"iso88591", "iso_8859-1", "iso_8859-1:1987", "l1", "latin1")
	add(textenc.Windows1252, "cp1252", "cp819", "ibm819", "windows-1252", "x-cp1252")
	add(textenc.UTF16BE, "utf-16be")
	add(textenc.UTF16LE, "utf-16", "utf-16le")
	add(textenc.ShiftJIS, "csshiftjis", "ms_kanji", "shift-jis", "shift_jis",
		"sjis", "windows-31j", "x-sjis")
	add(textenc.EUCJP, "cseucpkdfmtjapanese", "euc-jp", "x-euc-jp")
	add(textenc.EUCKR, "cseuckr", "csksc56011987", "euc-kr", "iso-ir-149",
		"korean", "ks_c_5601-1987", "ks_c_5601-1989", "ksc5601", "ksc_5601", "windows-949")
	add(textenc.GBK, "chinese", "csgb2312", "csiso58gb231280", "gb2312",
		"gb_2312", "gb_2312-80", "gbk", "iso-ir-58", "x-gbk")
	add(textenc.GB18030, "gb18030")
	add(textenc.HZGB2312, "hz-gb-2312")
	add(textenc.Big5, "big5", "big5-hkscs", "cn-big5", "csbig5", "x-x-big5")

	// The four ISO-2022 labels resolve to the replacement encoding, an
	// anti-smuggling device, not a real codec.
	add(textenc.Replacement, "csiso2022kr", "iso-2022-kr", "iso-2022-cn", "iso-2022-cn-ext")

	return m
}
