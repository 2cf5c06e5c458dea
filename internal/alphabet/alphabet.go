// Package alphabet defines the dense-indexed character sets the aligner
// operates over: DNA, RNA, and amino acid residues, each with an IUPAC
// ambiguity-code variant.
package alphabet

import "fmt"

// UnknownCharacterError is returned when a byte has no index in an
// Alphabet. It satisfies the SequenceError-style marker convention used
// throughout this module.
type UnknownCharacterError struct {
	Alphabet string
	Found    byte
	Position int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("alphabet %q: character %q at position %d is not valid", e.Alphabet, e.Found, e.Position)
}

func (e *UnknownCharacterError) IsAlphabetError() {}

// Alphabet is a finite, ordered set of characters with a dense 0-based
// index and an ASCII mapping. Index A (where A = Size()) is reserved for
// the gap and is never returned by IndexOf for an ordinary character.
type Alphabet struct {
	name    string
	bytes   []byte
	indexOf map[byte]uint8
}

// New builds an Alphabet from an ordered, duplicate-free list of
// characters. The order given is the dense index assignment.
func New(name string, chars string) *Alphabet {
	a := &Alphabet{
		name:    name,
		bytes:   []byte(chars),
		indexOf: make(map[byte]uint8, len(chars)),
	}
	for i, c := range a.bytes {
		a.indexOf[c] = uint8(i)
	}
	return a
}

// Name returns the alphabet's canonical CLI name.
func (a *Alphabet) Name() string { return a.name }

// Size returns A, the number of non-gap characters. The gap occupies
// dense index Size().
func (a *Alphabet) Size() int { return len(a.bytes) }

// GapIndex is the dense index reserved for the gap marker, always equal
// to Size().
func (a *Alphabet) GapIndex() uint8 { return uint8(len(a.bytes)) }

// IndexOf returns the dense index of c, or false if c is not a member.
func (a *Alphabet) IndexOf(c byte) (uint8, bool) {
	idx, ok := a.indexOf[c]
	return idx, ok
}

// ByteOf is the inverse of IndexOf. idx == GapIndex() returns '-'.
func (a *Alphabet) ByteOf(idx uint8) byte {
	if idx == a.GapIndex() {
		return '-'
	}
	return a.bytes[idx]
}

// IsGapByte reports whether c is one of the conventional gap spellings
// accepted in FASTA bodies and CSV cost-table labels.
func IsGapByte(c byte) bool {
	return c == '-' || c == '*'
}

// Decode translates a raw byte into a dense index, treating both '-' and
// '*' as the gap regardless of which alphabet is active.
func (a *Alphabet) Decode(c byte, position int) (uint8, error) {
	if IsGapByte(c) {
		return a.GapIndex(), nil
	}
	idx, ok := a.IndexOf(c)
	if !ok {
		return 0, &UnknownCharacterError{Alphabet: a.name, Found: c, Position: position}
	}
	return idx, nil
}

const (
	dnaChars       = "ACGT"
	dnaNChars      = "ACGTN"
	rnaChars       = "ACGU"
	rnaNChars      = "ACGUN"
	iupacNucExtra  = "RYSWKMBDHVN"
	iupacAminoAcid = "ARNDCQEGHILKMFPSTWYVBZXJUO"
	famsaAmino     = "ARNDCQEGHILKMFPSTWYVBZX*U"
)

var (
	DNA            = New("dna", dnaChars)
	DNAN           = New("dna-n", dnaNChars)
	RNA            = New("rna", rnaChars)
	RNAN           = New("rna-n", rnaNChars)
	DNAIUPAC       = New("dna-iupac", dnaChars+iupacNucExtra)
	RNAIUPAC       = New("rna-iupac", rnaChars+iupacNucExtra)
	IUPACAminoAcid = New("iupac-amino-acid", iupacAminoAcid)
	FAMSAAminoAcid = New("famsa-amino-acid", famsaAmino)
	byName         = buildByName()
)

func buildByName() map[string]*Alphabet {
	all := []*Alphabet{DNA, DNAN, RNA, RNAN, DNAIUPAC, RNAIUPAC, IUPACAminoAcid, FAMSAAminoAcid}
	m := make(map[string]*Alphabet, len(all))
	for _, a := range all {
		m[a.Name()] = a
	}
	return m
}

// Names lists every supported alphabet name, in the order the CLI enum
// should present them.
func Names() []string {
	return []string{
		DNA.Name(), DNAN.Name(), RNA.Name(), RNAN.Name(),
		DNAIUPAC.Name(), RNAIUPAC.Name(), IUPACAminoAcid.Name(), FAMSAAminoAcid.Name(),
	}
}

// ByName resolves a CLI alphabet name to its Alphabet, or reports an
// UnsupportedAlphabetError.
func ByName(name string) (*Alphabet, error) {
	a, ok := byName[name]
	if !ok {
		return nil, &UnsupportedAlphabetError{Name: name}
	}
	return a, nil
}

// UnsupportedAlphabetError is returned by ByName for an unrecognized
// alphabet name.
type UnsupportedAlphabetError struct {
	Name string
}

func (e *UnsupportedAlphabetError) Error() string {
	return fmt.Sprintf("unsupported alphabet %q (want one of %v)", e.Name, Names())
}

func (e *UnsupportedAlphabetError) IsAlphabetError() {}
