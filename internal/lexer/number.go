package lexer

import (
	"strconv"
	"strings"

	"github.com/erbsland-dev/elcl-go/types"
)

// lexNumberLike dispatches among Integer, Float, Date, Time, DateTime, and TimeDelta literals, all of which start
// with a sign or a digit (spec §4.3, §6.2). A `0x`/`0b` base prefix yields an Integer token; no Bytes token is
// produced here.
func (l *Lexer) lexNumberLike(begin types.Position) (Token, error) {
	sign := ""
	if r := l.peekRune(); r == '+' || r == '-' {
		sign = string(l.consume())
	}
	if l.peekRune() == '0' {
		if tok, err, handled := l.tryBasePrefixed(begin, sign); handled {
			return tok, err
		}
	}
	digits := l.readDigitRun()
	if l.peekRune() == '-' && sign == "" && isDateShape(digits) {
		return l.lexDateOrDateTime(begin, digits)
	}
	if l.peekRune() == ':' && sign == "" && isTimeShape(digits) {
		return l.lexTimeToken(begin, digits, "")
	}
	isFloat := false
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(digits)
	if l.peekRune() == '.' {
		isFloat = true
		b.WriteRune(l.consume())
		b.WriteString(l.readDigitRun())
	}
	if r := l.peekRune(); r == 'e' || r == 'E' {
		isFloat = true
		b.WriteRune(l.consume())
		if r2 := l.peekRune(); r2 == '+' || r2 == '-' {
			b.WriteRune(l.consume())
		}
		b.WriteString(l.readDigitRun())
	}
	raw := b.String()
	l.atLineHead = false
	if unit, ok := l.tryUnitSuffix(); ok {
		return l.finishTimeDelta(begin, raw, isFloat, unit)
	}
	if isFloat {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Token{}, l.err(types.KindSyntax, begin, "invalid float literal "+strconv.Quote(raw))
		}
		return Token{Kind: Float, Begin: begin, End: l.curPos(), Raw: raw, Content: f}, nil
	}
	plain := strings.TrimPrefix(strings.TrimPrefix(raw, "+"), "-")
	if len(plain) > MaxDecimalDigits {
		return Token{}, l.err(types.KindSyntax, begin, "integer literal exceeds 19 decimal digits")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Token{}, l.err(types.KindSyntax, begin, "invalid integer literal "+strconv.Quote(raw))
	}
	return Token{Kind: Integer, Begin: begin, End: l.curPos(), Raw: raw, Content: n}, nil
}

// readDigitRun reads decimal digits and `'` digit separators, returning the digits with separators stripped.
func (l *Lexer) readDigitRun() string {
	var b strings.Builder
	for {
		r := l.peekRune()
		if types.IsDigit(r) {
			b.WriteRune(l.consume())
		} else if r == '\'' {
			l.consume()
		} else {
			break
		}
	}
	return b.String()
}

// unitSuffixes is tried longest-first so "mo" (months) is matched before the bare "m" (minutes) it would
// otherwise shadow.
var unitSuffixes = []string{"mo", "ns", "us", "µs", "ms", "s", "m", "h", "d", "w", "y"}

// tryUnitSuffix consumes a recognized TimeDelta unit short-name immediately following a number, if present.
func (l *Lexer) tryUnitSuffix() (types.TimeUnit, bool) {
	for _, suf := range unitSuffixes {
		n := len([]rune(suf))
		if l.lookingAt(suf) && !types.IsNameContinuation(l.peekAt(n)) {
			for i := 0; i < n; i++ {
				l.consume()
			}
			unit, ok := types.UnitByShortSuffix(normalizeMicro(suf))
			return unit, ok
		}
	}
	return 0, false
}

func normalizeMicro(suf string) string {
	if suf == "us" {
		return "µs"
	}
	return suf
}

// lookingAt reports whether each rune of s matches the lookahead buffer at the corresponding offset.
func (l *Lexer) lookingAt(s string) bool {
	for i, r := range []rune(s) {
		if l.peekAt(i) != r {
			return false
		}
	}
	return true
}

func (l *Lexer) finishTimeDelta(begin types.Position, numRaw string, isFloat bool, unit types.TimeUnit) (Token, error) {
	var counts map[types.TimeUnit]int64
	if isFloat {
		f, _ := strconv.ParseFloat(numRaw, 64)
		counts = map[types.TimeUnit]int64{unit: int64(f)}
	} else {
		n, _ := strconv.ParseInt(numRaw, 10, 64)
		counts = map[types.TimeUnit]int64{unit: n}
	}
	td := types.NewTimeDelta(counts)
	return Token{Kind: TimeDelta, Begin: begin, End: l.curPos(), Raw: numRaw, Content: td}, nil
}

func isDateShape(digits string) bool { return len(digits) == 4 }

func isTimeShape(digits string) bool { return len(digits) == 2 }

// lexDateOrDateTime lexes a `YYYY-MM-DD` date literal, continuing into a `T`/space-separated time-of-day to form
// a DateTime (spec §4.1, §6.3).
func (l *Lexer) lexDateOrDateTime(begin types.Position, yearDigits string) (Token, error) {
	l.consume() // '-'
	monthDigits := l.readFixedDigits(2)
	if l.peekRune() != '-' {
		return Token{}, l.err(types.KindSyntax, begin, "malformed date literal")
	}
	l.consume()
	dayDigits := l.readFixedDigits(2)
	year, _ := strconv.Atoi(yearDigits)
	month, _ := strconv.Atoi(monthDigits)
	day, _ := strconv.Atoi(dayDigits)
	date, derr := types.NewDate(year, month, day)
	if derr != nil {
		return Token{}, l.err(types.KindSyntax, begin, derr.Error())
	}
	raw := yearDigits + "-" + monthDigits + "-" + dayDigits
	l.atLineHead = false
	if r := l.peekRune(); r == 'T' || r == 't' || (r == ' ' && types.IsDigit(l.peekAt(1))) {
		sep := l.consume()
		hourDigits := l.readFixedDigits(2)
		tm, timeRaw, terr := l.finishTimeOfDay(begin, hourDigits)
		if terr != nil {
			return Token{}, terr
		}
		dt := types.NewDateTime(date, tm)
		return Token{Kind: DateTimeTok, Begin: begin, End: l.curPos(), Raw: raw + string(sep) + timeRaw, Content: dt}, nil
	}
	return Token{Kind: Date, Begin: begin, End: l.curPos(), Raw: raw, Content: date}, nil
}

// lexTimeToken lexes a bare `HH:MM[:SS[.fraction]][offset]` time-of-day literal. The trailing argument is unused
// here (it mirrors the call shape lexDateOrDateTime would need for a date-then-time split) but kept so both
// lexing paths share finishTimeOfDay's signature.
func (l *Lexer) lexTimeToken(begin types.Position, hourDigits string, _ string) (Token, error) {
	tm, raw, err := l.finishTimeOfDay(begin, hourDigits)
	if err != nil {
		return Token{}, err
	}
	l.atLineHead = false
	return Token{Kind: TimeTok, Begin: begin, End: l.curPos(), Raw: hourDigits + raw, Content: tm}, nil
}

// finishTimeOfDay consumes `:MM[:SS[.fraction]][offset]` following an already-read two-digit hour, returning the
// assembled Time and the raw text consumed after hourDigits.
func (l *Lexer) finishTimeOfDay(begin types.Position, hourDigits string) (types.Time, string, error) {
	var raw strings.Builder
	if l.peekRune() != ':' {
		return types.UndefinedTime, "", l.err(types.KindSyntax, begin, "malformed time literal")
	}
	raw.WriteRune(l.consume())
	minuteDigits := l.readFixedDigits(2)
	raw.WriteString(minuteDigits)
	secondDigits := "00"
	nanos := 0
	if l.peekRune() == ':' {
		raw.WriteRune(l.consume())
		secondDigits = l.readFixedDigits(2)
		raw.WriteString(secondDigits)
		if l.peekRune() == '.' {
			raw.WriteRune(l.consume())
			fracDigits := l.readDigitRun()
			raw.WriteString(fracDigits)
			n, ferr := types.ParseFraction(fracDigits)
			if ferr != nil {
				return types.UndefinedTime, "", l.err(types.KindSyntax, begin, ferr.Error())
			}
			nanos = n
		}
	}
	offset, offsetRaw, oerr := l.readTimeOffset()
	if oerr != nil {
		return types.UndefinedTime, "", l.err(types.KindSyntax, begin, oerr.Error())
	}
	raw.WriteString(offsetRaw)
	hour, _ := strconv.Atoi(hourDigits)
	minute, _ := strconv.Atoi(minuteDigits)
	second, _ := strconv.Atoi(secondDigits)
	tm, terr := types.NewTime(hour, minute, second, nanos, offset)
	if terr != nil {
		return types.UndefinedTime, "", l.err(types.KindSyntax, begin, terr.Error())
	}
	return tm, raw.String(), nil
}

// readTimeOffset consumes an optional UTC offset suffix: `z`/`Z` for UTC, or `[+-]HH[:MM[:SS]]`; anything else
// leaves the offset as local time (spec §4.1).
func (l *Lexer) readTimeOffset() (types.TimeOffset, string, error) {
	switch r := l.peekRune(); r {
	case 'z', 'Z':
		l.consume()
		return types.UTCOffset, string(r), nil
	case '+', '-':
		sign := l.consume()
		hourDigits := l.readFixedDigits(2)
		raw := string(sign) + hourDigits
		seconds := atoi(hourDigits) * 3600
		if l.peekRune() == ':' {
			raw += string(l.consume())
			minuteDigits := l.readFixedDigits(2)
			raw += minuteDigits
			seconds += atoi(minuteDigits) * 60
			if l.peekRune() == ':' {
				raw += string(l.consume())
				secondDigits := l.readFixedDigits(2)
				raw += secondDigits
				seconds += atoi(secondDigits)
			}
		}
		if sign == '-' {
			seconds = -seconds
		}
		offset, err := types.NewOffset(seconds)
		if err != nil {
			return types.TimeOffset{}, "", err
		}
		return offset, raw, nil
	default:
		return types.LocalOffset, "", nil
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// readFixedDigits reads up to n decimal digits (stopping early at a non-digit).
func (l *Lexer) readFixedDigits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if !types.IsDigit(l.peekRune()) {
			break
		}
		b.WriteRune(l.consume())
	}
	return b.String()
}

// tryBasePrefixed handles `0x...` hex and `0b...` binary integer literals. It only consumes the leading '0' once
// the following rune confirms a base prefix, so a plain "0" (or "0.5", "0mo", ...) falls through to the decimal
// path with its digit intact.
func (l *Lexer) tryBasePrefixed(begin types.Position, sign string) (tok Token, err error, handled bool) {
	switch l.peekAt(1) {
	case 'x', 'X':
		l.consume() // '0'
		l.consume() // 'x'/'X'
		digits := l.readHexRun()
		if len(digits) > MaxHexDigits {
			return Token{}, l.err(types.KindSyntax, begin, "hexadecimal literal exceeds 16 digits"), true
		}
		n, perr := strconv.ParseUint(digits, 16, 64)
		if perr != nil {
			return Token{}, l.err(types.KindSyntax, begin, "invalid hexadecimal literal"), true
		}
		val := int64(n)
		if sign == "-" {
			val = -val
		}
		l.atLineHead = false
		return Token{Kind: Integer, Begin: begin, End: l.curPos(), Raw: sign + "0x" + digits, Content: val}, nil, true
	case 'b', 'B':
		l.consume() // '0'
		l.consume() // 'b'/'B'
		digits := l.readBinaryRun()
		if len(digits) > MaxBinaryDigits {
			return Token{}, l.err(types.KindSyntax, begin, "binary literal exceeds 64 digits"), true
		}
		n, perr := strconv.ParseUint(digits, 2, 64)
		if perr != nil {
			return Token{}, l.err(types.KindSyntax, begin, "invalid binary literal"), true
		}
		val := int64(n)
		if sign == "-" {
			val = -val
		}
		l.atLineHead = false
		return Token{Kind: Integer, Begin: begin, End: l.curPos(), Raw: sign + "0b" + digits, Content: val}, nil, true
	default:
		return Token{}, nil, false
	}
}

func (l *Lexer) readHexRun() string {
	var b strings.Builder
	for {
		r := l.peekRune()
		if types.IsHexDigit(r) {
			b.WriteRune(l.consume())
		} else if r == '\'' {
			l.consume()
		} else {
			break
		}
	}
	return b.String()
}

func (l *Lexer) readBinaryRun() string {
	var b strings.Builder
	for {
		r := l.peekRune()
		if types.IsBinaryDigit(r) {
			b.WriteRune(l.consume())
		} else if r == '\'' {
			l.consume()
		} else {
			break
		}
	}
	return b.String()
}
