// SPDX-License-Identifier: MIT
// Package: fingerprint (test helpers)
//
// Purpose:
//   • Provide small, deterministic structure fixtures and reference
//     generators for assembler/descriptor tests.
//   • Keep all data finite and well-formed so tests exercise contracts,
//     not numeric edge cases.

package fingerprint_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/featmat/fingerprint"
)

// molecule is a minimal Structure + KeyValuer fixture.
type molecule struct {
	numbers []int
	kvp     map[string]float64
}

func (m molecule) AtomicNumbers() []int { return m.numbers }

func (m molecule) AtomCount() int { return len(m.numbers) }

func (m molecule) KeyValuePairs() map[string]float64 { return m.kvp }

// bare is a Structure without the metadata capability.
type bare struct{ numbers []int }

func (b bare) AtomicNumbers() []int { return b.numbers }
func (b bare) AtomCount() int       { return len(b.numbers) }

// Canonical small systems (element codes: H=1, C=6, O=8, Pt=78).
func water() molecule {
	return molecule{numbers: []int{8, 1, 1}, kvp: map[string]float64{"energy": -76.4}}
}

func methane() molecule {
	return molecule{numbers: []int{6, 1, 1, 1, 1}, kvp: map[string]float64{"energy": -40.5}}
}

func carbonDioxide() molecule {
	return molecule{numbers: []int{6, 8, 8}, kvp: map[string]float64{"energy": -188.6}}
}

func platinumDimer() molecule {
	return molecule{numbers: []int{78, 78}, kvp: map[string]float64{"energy": -0.9}}
}

// smallTrainSet returns the canonical three-molecule training fixture.
// Vocabulary {1, 6, 8}, max atom count 5.
func smallTrainSet() fingerprint.List {
	return fingerprint.List{water(), methane(), carbonDioxide()}
}

// compositionGen returns a generator counting atoms per vocabulary entry.
// Width = len(Normalization.AtomTypes); padding is implicit — absent types
// stay at zero.
func compositionGen(asm *fingerprint.Assembler) fingerprint.Generator {
	return func(s fingerprint.Structure) ([]float64, error) {
		norm := asm.Normalization()
		out := make([]float64, len(norm.AtomTypes))
		for _, z := range s.AtomicNumbers() {
			for k, t := range norm.AtomTypes {
				if t == z {
					out[k]++
				}
			}
		}

		return out, nil
	}
}

// paddedNumbersGen returns a generator emitting the atomic numbers padded
// with zeros to Normalization.MaxAtoms. Width = MaxAtoms.
func paddedNumbersGen(asm *fingerprint.Assembler) fingerprint.Generator {
	return func(s fingerprint.Structure) ([]float64, error) {
		norm := asm.Normalization()
		out := make([]float64, norm.MaxAtoms)
		for i, z := range s.AtomicNumbers() {
			if i >= len(out) {
				return nil, fmt.Errorf("structure exceeds max atom count %d", norm.MaxAtoms)
			}
			out[i] = float64(z)
		}

		return out, nil
	}
}

// randomMolecules builds n random hydrocarbon-like fixtures from a fixed
// seed so generated sets are always the same.
func randomMolecules(n int, seed int64) fingerprint.List {
	r := rand.New(rand.NewSource(seed))
	set := make(fingerprint.List, 0, n)
	for i := 0; i < n; i++ {
		atoms := 1 + r.Intn(6)
		numbers := make([]int, atoms)
		for j := range numbers {
			if r.Intn(2) == 0 {
				numbers[j] = 1 // H
			} else {
				numbers[j] = 6 // C
			}
		}
		set = append(set, molecule{
			numbers: numbers,
			kvp:     map[string]float64{"energy": -float64(atoms) * r.Float64()},
		})
	}

	return set
}
