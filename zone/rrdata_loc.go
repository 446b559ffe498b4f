package zone

import (
	"encoding/binary"
	"strconv"
	"strings"
)

func init() {
	registerRR("LOC", parseLOC)
}

// powersOfTen is used to convert a centimeter value to the mantissa/
// exponent byte pairs RFC 1876 §3 uses for SIZE/HORIZ PRE/VERT PRE.
var powersOfTen = [...]int64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// parseLOC implements RFC 1876 §3's presentation format:
//
//	d1 [m1 [s1]] {"N"|"S"} d2 [m2 [s2]] {"E"|"W"} alt["m"] [siz["m" [hp["m" [vp["m"]]]]]]
func parseLOC(p *Parser, f *File) ([]byte, Result) {
	lat, res := p.readLOCAngle(f, "N", "S")
	if res != Success {
		return nil, res
	}
	lon, res := p.readLOCAngle(f, "E", "W")
	if res != Success {
		return nil, res
	}

	altTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	alt, ok := parseLOCAltitude(string(altTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid LOC altitude %q", altTok.Text)
	}

	size := encodeLOCPrecision(100) // default 1m, expressed in cm
	horizPre := encodeLOCPrecision(1000000)
	vertPre := encodeLOCPrecision(1000)

	for i, dst := range []*byte{&size, &horizPre, &vertPre} {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		b, ok := parseLOCPrecisionField(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid LOC precision field %q", tok.Text)
		}
		_ = i
		*dst = b
	}

	out := []byte{0, size, horizPre, vertPre} // version 0
	out = binary.BigEndian.AppendUint32(out, lat)
	out = binary.BigEndian.AppendUint32(out, lon)
	out = binary.BigEndian.AppendUint32(out, alt)
	return out, Success
}

// readLOCAngle reads a [degrees [minutes [seconds]]] hemisphere group,
// where hemisphere is one of the two single-letter tokens given.
func (p *Parser) readLOCAngle(f *File, pos, neg string) (uint32, Result) {
	degTok, res := p.nextFieldToken(f)
	if res != Success {
		return 0, res
	}
	deg, err := strconv.ParseFloat(string(degTok.Text), 64)
	if err != nil {
		return 0, p.fail(SyntaxError, f, "invalid LOC degrees %q", degTok.Text)
	}

	var minutes, seconds float64
	extra := 0 // angle fields read after degrees
	for {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return 0, res
		}
		text := string(tok.Text)
		if text == pos || text == neg {
			milliarcsec := uint32((deg*3600 + minutes*60 + seconds) * 1000)
			if text == neg {
				return (uint32(1) << 31) - milliarcsec, Success
			}
			return (uint32(1) << 31) + milliarcsec, Success
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, p.fail(SyntaxError, f, "invalid LOC angle field %q", tok.Text)
		}
		if extra == 0 {
			minutes = v
		} else {
			seconds = v
		}
		extra++
	}
}

// parseLOCAltitude parses "alt[m]", in meters with optional centimeter
// fraction and optional sign, to its wire encoding: centimeters above a
// reference of -100000.00m.
func parseLOCAltitude(s string) (uint32, bool) {
	s = strings.TrimSuffix(s, "m")
	meters, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	cm := int64(meters*100) + 10000000
	if cm < 0 {
		return 0, false
	}
	return uint32(cm), true
}

// parseLOCPrecisionField parses a "NNN.NN[m]" SIZE/HORIZ PRE/VERT PRE
// field into its mantissa/exponent byte encoding.
func parseLOCPrecisionField(s string) (byte, bool) {
	s = strings.TrimSuffix(s, "m")
	meters, err := strconv.ParseFloat(s, 64)
	if err != nil || meters < 0 {
		return 0, false
	}
	return encodeLOCPrecision(int64(meters * 100)), true
}

// encodeLOCPrecision picks the largest exponent whose power of ten does
// not exceed cm, then takes cm divided by that power, truncated and capped
// at 9, as the mantissa — the mantissa/exponent form RFC 1876 §3 specifies
// for SIZE/HORIZ PRE/VERT PRE.
func encodeLOCPrecision(cm int64) byte {
	exponent := 0
	for exponent < 9 && cm >= powersOfTen[exponent+1] {
		exponent++
	}
	mantissa := cm / powersOfTen[exponent]
	if mantissa > 9 {
		mantissa = 9
	}
	return byte(mantissa<<4) | byte(exponent)
}
