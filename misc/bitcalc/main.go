package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	bitnum "github.com/shabbyrobe/go-bitnum"
)

// This is a scratchpad for poking at bitnum.Uint from the shell. It evaluates
// a single operation and prints the result in both binary and decimal, which
// makes it easy to see what each operator does to the width of its operands.
//
// Pass -dump to see the raw digit slices via spew.

const usage = `Bit-vector calculator

Usage: bitcalc [-dump] <a> <op> <b>
       bitcalc [-dump] neg <a>

Operands are decimal, or binary with a 0b prefix (leading zeros are kept).
Ops: & | ^ + - * (or x) <<
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bitcalc", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "Dump operands and result with spew")
	if err := fs.Parse(args); err != nil {
		return err
	}
	args = fs.Args()

	var operands []*bitnum.Uint
	var result *bitnum.Uint

	if len(args) == 2 && args[0] == "neg" {
		a, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		operands = append(operands, a)
		result = bitnum.Negate(a)

	} else if len(args) == 3 {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[2])
		if err != nil {
			return err
		}
		operands = append(operands, a, b)

		result, err = eval(args[1], a, b)
		if err != nil {
			return err
		}

	} else {
		fmt.Print(usage)
		return fmt.Errorf("missing args")
	}

	fmt.Printf("%s (%d)\n", result, result)
	fmt.Printf("width:%d bitlen:%d\n", result.Width(), result.BitLen())

	if *dump {
		for _, o := range operands {
			spew.Dump(o)
		}
		spew.Dump(result)
	}
	return nil
}

func parseOperand(s string) (*bitnum.Uint, error) {
	if strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B") {
		return bitnum.UintFromString(s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bitcalc: operand %q invalid", s)
	}
	return bitnum.UintFromBigInt(b)
}

func eval(op string, a, b *bitnum.Uint) (*bitnum.Uint, error) {
	switch op {
	case "&":
		return bitnum.And(a, b), nil
	case "|":
		return bitnum.Or(a, b), nil
	case "^":
		return bitnum.Xor(a, b), nil
	case "+":
		return bitnum.Add(a, b), nil
	case "-":
		return bitnum.Sub(a, b), nil
	case "*", "x":
		return bitnum.Mul(a, b), nil
	case "<<":
		if !b.IsUint64() {
			return nil, fmt.Errorf("bitcalc: shift %s too large", b)
		}
		return bitnum.Lsh(a, uint(b.AsUint64())), nil
	default:
		return nil, fmt.Errorf("bitcalc: unknown op %q", op)
	}
}
