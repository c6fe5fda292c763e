package mitab

import "github.com/axgle/mahonia"

// charsetEncodings maps the charset names a MapInfo table header can declare
// to the IANA encoding names mahonia understands. "Neutral" is the identity.
var charsetEncodings = map[string]string{
	"Neutral":            "",
	"WindowsLatin1":      "windows-1252",
	"WindowsLatin2":      "windows-1250",
	"WindowsCyrillic":    "windows-1251",
	"WindowsGreek":       "windows-1253",
	"WindowsTurkish":     "windows-1254",
	"WindowsHebrew":      "windows-1255",
	"WindowsArabic":      "windows-1256",
	"WindowsBaltRim":     "windows-1257",
	"WindowsSimpChinese": "gbk",
	"WindowsTradChinese": "big5",
	"WindowsJapanese":    "shift_jis",
	"WindowsKorean":      "euc-kr",
}

// Charset converts field text into the encoding a MapInfo table header
// declares.
type Charset struct {
	name string
	enc  mahonia.Encoder // nil for Neutral
}

// NewCharset resolves a MapInfo charset name. Unknown names fail with
// ErrUnknownCharset.
func NewCharset(name string) (*Charset, error) {
	encName, ok := charsetEncodings[name]
	if !ok {
		return nil, &ErrUnknownCharset{Name: name}
	}
	cs := &Charset{name: name}
	if encName != "" {
		cs.enc = mahonia.NewEncoder(encName)
		if cs.enc == nil {
			return nil, &ErrUnknownCharset{Name: name}
		}
	}
	return cs, nil
}

// Name returns the MapInfo charset name.
func (c *Charset) Name() string { return c.name }

// Encode converts s from UTF-8 into the table encoding. Neutral passes the
// string through unchanged.
func (c *Charset) Encode(s string) string {
	if c == nil || c.enc == nil {
		return s
	}
	return c.enc.ConvertString(s)
}
