// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ed25519gen is a small demo driver for the edwards25519
// package: it generates a key pair, signs a message read from stdin or
// -msg, and verifies the result. It is not part of the library's public
// API surface.
package main

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sys/cpu"

	"github.com/gtank/edwards25519"
	internaled "github.com/gtank/edwards25519/internal/edwards25519"
)

func main() {
	var (
		msgFlag   = flag.String("msg", "", "message to sign (default: read stdin)")
		prehash   = flag.Bool("prehash", false, "hash the message with SHA3-512 before signing, as a demonstration of an external pre-hash collaborator")
		seedHex   = flag.String("seed", "", "32-byte hex seed (default: random)")
		curveDemo = flag.Bool("curve25519-demo", false, "run the Curve25519 cousin sanity iteration instead of signing, and exit")
	)
	flag.Parse()

	if cpu.X86.HasBMI2 {
		log.Printf("host supports BMI2; this pure-Go field implementation does not use it")
	}

	if *curveDemo {
		var k [32]byte
		k[0] = 0xff
		for i := 0; i < 1024; i++ {
			k = internaled.MontgomeryBasepointScalarMult(&k)
		}
		fmt.Printf("curve25519 1024-fold iteration: %x\n", k)
		return
	}

	msg, err := readMessage(*msgFlag)
	if err != nil {
		log.Fatalf("ed25519gen: %v", err)
	}
	if *prehash {
		sum := sha3.Sum512(msg)
		msg = sum[:]
	}

	seed, err := resolveSeed(*seedHex)
	if err != nil {
		log.Fatalf("ed25519gen: %v", err)
	}

	priv := edwards25519.NewKeyFromSeed(seed)
	pub := priv.Public()
	sig := edwards25519.Sign(priv, msg)

	fmt.Printf("seed:      %x\n", seed)
	fmt.Printf("public:    %x\n", []byte(pub))
	fmt.Printf("signature: %x\n", sig)
	fmt.Printf("verify:    %v\n", edwards25519.Verify(pub, msg, sig))
}

func readMessage(msgFlag string) ([]byte, error) {
	if msgFlag != "" {
		return []byte(msgFlag), nil
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

func resolveSeed(seedHex string) ([]byte, error) {
	if seedHex == "" {
		seed := make([]byte, edwards25519.SeedSize)
		if _, err := io.ReadFull(cryptorand.Reader, seed); err != nil {
			return nil, fmt.Errorf("generating seed: %w", err)
		}
		return seed, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decoding -seed: %w", err)
	}
	if len(seed) != edwards25519.SeedSize {
		return nil, fmt.Errorf("-seed must be %d bytes, got %d", edwards25519.SeedSize, len(seed))
	}
	return seed, nil
}
