package bitnum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shabbyrobe/golib/assert"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzMaxWidth   = fuzzDefaultMaxWidth
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "bitnum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzMaxWidth, "bitnum.fuzzwidth", fuzzMaxWidth, "Maximum width in digits of generated operands")
	flag.Int64Var(&fuzzSeed, "bitnum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bitnum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max width: ", fuzzMaxWidth)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

var u64 = UintFrom64

// ub parses a binary literal, keeping any leading zeros. It is only for use
// with known-good inputs.
func ub(s string) *Uint {
	u, err := UintFromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("bitnum: big string %q invalid", s))
	}
	return b
}

func accUintFromBigInt(b *big.Int) *Uint {
	u, err := UintFromBigInt(b)
	if err != nil {
		panic(fmt.Errorf("bitnum: conversion to Uint failed in fuzz tester for %s: %v", b, err))
	}
	return u
}

type StringList []string

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigUint returns a random non-negative big.Int whose bit length is
// chosen uniformly from [0, maxWidth], so short and long operands turn up as
// often as each other.
func randomBigUint(rng *rand.Rand, maxWidth int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}
	var v = new(big.Int)
	bits := rng.Intn(maxWidth + 1)
	if bits == 0 {
		return v
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(bits-1)))
	v.SetBit(v, bits-1, 1)
	return v
}

func TestStringListSet(t *testing.T) {
	tt := assert.WrapTB(t)
	var s StringList
	tt.MustOK(s.Set("add, sub,,mul"))
	tt.MustOK(s.Set("neg"))
	tt.MustEqual("add,sub,mul,neg", s.String())
}
