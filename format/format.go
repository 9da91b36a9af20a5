// Package format implements the printf-style verb subset xbarin02/mpi's
// gmp_vsprintf supports: %i, %d, %u, %li, %lu, %f, %Zi, %Zd, and %%. It
// is a pure formatting library with no process lifecycle of its own, so
// an unsupported verb or a mismatched argument type panics rather than
// calling bignum.Abort. Only bignum's own arithmetic contract
// violations go through that process-exit seam.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lookbusy1344/bignum/bignum"
)

// scan state, mirroring the verb state machine this package's printf
// subset is modeled on: state 0 is "outside a % sequence", state 1 is
// "inside one, accumulating a length modifier before the verb".
const (
	stateLiteral = 0
	stateVerb    = 1
)

// Sprintf renders format against args and returns the result. A
// strings.Builder never fails to write, so the only way Fprintf can
// report an error here is a bug in this package.
func Sprintf(format string, args ...interface{}) string {
	var b strings.Builder
	if _, err := Fprintf(&b, format, args...); err != nil {
		panic(err)
	}
	return b.String()
}

// Fprintf renders format against args into w, consuming one arg per verb
// in left-to-right order. It panics if the format string names a verb
// outside {%i, %d, %u, %li, %lu, %f, %Zi, %Zd, %%} or if an argument's
// type does not match the verb consuming it.
func Fprintf(w io.Writer, format string, args ...interface{}) (int, error) {
	written := 0
	state := stateLiteral
	modifier := byte(0) // 0, 'l', or 'Z'
	argIndex := 0

	nextArg := func(verb string) interface{} {
		if argIndex >= len(args) {
			panic(fmt.Sprintf("format: not enough arguments for verb %%%s", verb))
		}
		a := args[argIndex]
		argIndex++
		return a
	}

	emit := func(s string) error {
		n, err := io.WriteString(w, s)
		written += n
		return err
	}

	for i := 0; i < len(format); i++ {
		c := format[i]

		switch state {
		case stateLiteral:
			if c == '%' {
				state = stateVerb
				modifier = 0
				continue
			}
			if err := emit(string(c)); err != nil {
				return written, err
			}

		case stateVerb:
			switch c {
			case '%':
				if err := emit("%"); err != nil {
					return written, err
				}
				state = stateLiteral
			case 'l':
				modifier = 'l'
			case 'Z':
				modifier = 'Z'
			case 'i', 'd':
				if err := emit(formatSignedVerb(modifier, nextArg("i/d"))); err != nil {
					return written, err
				}
				state = stateLiteral
			case 'u':
				if err := emit(formatUnsignedVerb(modifier, nextArg("u"))); err != nil {
					return written, err
				}
				state = stateLiteral
			case 'f':
				if modifier != 0 {
					panic(fmt.Sprintf("format: unsupported length modifier %q on verb %%f", modifier))
				}
				f, ok := nextArg("f").(float64)
				if !ok {
					panic("format: %f requires a float64 argument")
				}
				if err := emit(strconv.FormatFloat(f, 'f', 6, 64)); err != nil {
					return written, err
				}
				state = stateLiteral
			default:
				panic(fmt.Sprintf("format: unsupported verb %%%c", c))
			}
		}
	}

	if state != stateLiteral {
		panic("format: unterminated % sequence")
	}

	return written, nil
}

func formatSignedVerb(modifier byte, arg interface{}) string {
	switch modifier {
	case 0:
		v, ok := arg.(int)
		if !ok {
			panic(fmt.Sprintf("format: %%i/%%d requires an int argument, got %T", arg))
		}
		return strconv.Itoa(v)
	case 'l':
		v, ok := arg.(int64)
		if !ok {
			panic(fmt.Sprintf("format: %%li requires an int64 argument, got %T", arg))
		}
		return strconv.FormatInt(v, 10)
	case 'Z':
		v, ok := arg.(*bignum.BigUInt)
		if !ok {
			panic(fmt.Sprintf("format: %%Zi/%%Zd requires a *bignum.BigUInt argument, got %T", arg))
		}
		return v.String()
	default:
		panic(fmt.Sprintf("format: unsupported length modifier %q", modifier))
	}
}

func formatUnsignedVerb(modifier byte, arg interface{}) string {
	switch modifier {
	case 0:
		v, ok := arg.(uint)
		if !ok {
			panic(fmt.Sprintf("format: %%u requires a uint argument, got %T", arg))
		}
		return strconv.FormatUint(uint64(v), 10)
	case 'l':
		v, ok := arg.(uint64)
		if !ok {
			panic(fmt.Sprintf("format: %%lu requires a uint64 argument, got %T", arg))
		}
		return strconv.FormatUint(v, 10)
	default:
		panic(fmt.Sprintf("format: unsupported length modifier %q on verb %%u", modifier))
	}
}
