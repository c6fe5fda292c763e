package mitab

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// FieldType enumerates the native MapInfo field types.
type FieldType int

const (
	FieldChar FieldType = iota
	FieldInteger
	FieldSmallInt
	FieldDecimal
	FieldFloat
	FieldDate
	FieldTime
	FieldDateTime
	FieldLogical
)

// String returns the native type name as it appears in TAB headers.
func (t FieldType) String() string {
	switch t {
	case FieldChar:
		return "Char"
	case FieldInteger:
		return "Integer"
	case FieldSmallInt:
		return "SmallInt"
	case FieldDecimal:
		return "Decimal"
	case FieldFloat:
		return "Float"
	case FieldDate:
		return "Date"
	case FieldTime:
		return "Time"
	case FieldDateTime:
		return "DateTime"
	case FieldLogical:
		return "Logical"
	default:
		return "Unknown"
	}
}

// MapInfo storage limits. Decimal fields outside these bounds make MapInfo
// reject or corrupt the table, so out-of-range requests are adjusted rather
// than refused.
const (
	maxCharWidth    = 254
	maxDecimalWidth = 20
	maxDecimalPrec  = 16
	minDecimalGap   = 2 // width - precision must leave room for sign and point
)

// MapFieldType maps a generic field definition onto a native MapInfo field
// type, width and precision.
//
// Defaults when the declared width is zero: Integer 12, Date 10, Time 9,
// DateTime 19, Char 254. A Real with no width and no precision becomes a
// Float of width 32; any other Real becomes a Decimal clamped to MapInfo
// limits (width capped at 20 first, then the width-precision gap restored,
// then precision capped at 16 - each adjustment feeds the next). Clamping is
// reported at debug level only.
//
// List types have no MapInfo representation and fail with
// ErrUnsupportedFieldType.
func MapFieldType(def model.FieldDefn) (FieldType, int, int, error) {
	width := def.Width
	precision := def.Precision

	switch def.Type {
	case model.FieldInteger:
		if width == 0 {
			width = 12
		}
		return FieldInteger, width, precision, nil

	case model.FieldReal:
		if width == 0 && precision == 0 {
			return FieldFloat, 32, 0, nil
		}
		if width > maxDecimalWidth || width-precision < minDecimalGap || precision > maxDecimalPrec {
			declWidth, declPrec := width, precision
			if width > maxDecimalWidth {
				width = maxDecimalWidth
			}
			if width-precision < minDecimalGap {
				precision = width - minDecimalGap
			}
			if precision > maxDecimalPrec {
				precision = maxDecimalPrec
			}
			log.WithFields(log.Fields{
				"field":    def.Name,
				"declared": fmt.Sprintf("%d.%d", declWidth, declPrec),
				"adjusted": fmt.Sprintf("%d.%d", width, precision),
			}).Debug("mitab: adjusting decimal width/precision to MapInfo limits")
		}
		return FieldDecimal, width, precision, nil

	case model.FieldDate:
		if width == 0 {
			width = 10
		}
		return FieldDate, width, 0, nil

	case model.FieldTime:
		if width == 0 {
			width = 9
		}
		return FieldTime, width, 0, nil

	case model.FieldDateTime:
		if width == 0 {
			width = 19
		}
		return FieldDateTime, width, 0, nil

	case model.FieldString:
		if width == 0 || width > maxCharWidth {
			width = maxCharWidth
		}
		return FieldChar, width, 0, nil

	default:
		return 0, 0, 0, &ErrUnsupportedFieldType{Field: def.Name, Type: def.Type}
	}
}
