package fasta

import (
	"errors"
	"io"
	"strings"
	"testing"

	"seqio-core/alphabet"
	"seqio-core/codec"
)

func TestNextSingleRecord(t *testing.T) {
	r := NewReader(strings.NewReader(">seq1 desc\nACGT\nACGT\n"))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.ID != "seq1" || rec.Description != "desc" || string(rec.Seq) != "ACGTACGT" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestNextMultiRecord(t *testing.T) {
	const in = ">a one two\nACGT\n\nGGTT\n>b\n>c\nnnnn\n"
	recs, err := NewReader(strings.NewReader(in)).ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].ID != "a" || recs[0].Description != "one two" || string(recs[0].Seq) != "ACGTGGTT" {
		t.Fatalf("record 0: %+v", recs[0])
	}
	// header directly followed by the next header yields an empty sequence
	if recs[1].ID != "b" || len(recs[1].Seq) != 0 {
		t.Fatalf("record 1: %+v", recs[1])
	}
	if recs[2].ID != "c" || string(recs[2].Seq) != "nnnn" {
		t.Fatalf("record 2: %+v", recs[2])
	}
}

func TestNextHeaderAtEOF(t *testing.T) {
	rec, err := NewReader(strings.NewReader(">lonely")).Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.ID != "lonely" || len(rec.Seq) != 0 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestNextBodyBeforeHeader(t *testing.T) {
	_, err := NewReader(strings.NewReader("ACGT\n>late\nACGT\n")).Next()
	var fe *codec.FormatError
	if !errors.As(err, &fe) || fe.Line != 1 {
		t.Fatalf("expected FormatError at line 1, got %v", err)
	}
	if !strings.Contains(fe.Msg, "without header") {
		t.Fatalf("unexpected message: %q", fe.Msg)
	}
}

func TestNextEmptyIdentifier(t *testing.T) {
	_, err := NewReader(strings.NewReader(">\nACGT\n")).Next()
	var fe *codec.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestNextStrictAlphabet(t *testing.T) {
	r := NewReader(strings.NewReader(">s\nACGT\nAXGT\n"))
	_, err := r.Next()
	var ve *codec.ValidationError
	if !errors.As(err, &ve) || ve.Line != 3 {
		t.Fatalf("expected ValidationError at line 3, got %v", err)
	}
	if !strings.Contains(ve.Msg, `'X'`) {
		t.Fatalf("message should name the symbol: %q", ve.Msg)
	}
	// errors are sticky
	if _, again := r.Next(); again != err {
		t.Fatalf("error not sticky: %v", again)
	}
}

func TestNextLenientPassthrough(t *testing.T) {
	r := NewReaderOptions(strings.NewReader(">s\nAXGT*\n"), Options{Strict: false})
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if string(rec.Seq) != "AXGT*" {
		t.Fatalf("lenient mode altered sequence: %q", rec.Seq)
	}
}

func TestNextAlphabets(t *testing.T) {
	rna := Options{Alphabet: alphabet.RNA, Strict: true}
	if _, err := NewReaderOptions(strings.NewReader(">r\nACGU\n"), rna).Next(); err != nil {
		t.Fatalf("valid RNA rejected: %v", err)
	}
	if _, err := NewReaderOptions(strings.NewReader(">r\nACGT\n"), rna).Next(); err == nil {
		t.Fatal("T accepted under the RNA alphabet")
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	recs, err := NewReader(strings.NewReader("")).ReadAll()
	if err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}
