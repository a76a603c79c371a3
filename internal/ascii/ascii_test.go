// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ascii

import (
	"bytes"
	"testing"
)

//********************************************************************************************

func TestWriteBuckets(t *testing.T) {
	buf := []byte{0, 63, 64, 127, 128, 191, 192, 255}
	var out bytes.Buffer
	if err := Write(&out, 8, 1, buf); err != nil {
		t.Fatalf("Write: unexpected error %v", err)
	}
	want := "  ..**@@\n"
	if out.String() != want {
		t.Errorf("Write: expected %q, actual %q", want, out.String())
	}
}

func TestWriteRowBreaks(t *testing.T) {
	buf := []byte{0, 0, 255, 255}
	var out bytes.Buffer
	if err := Write(&out, 2, 2, buf); err != nil {
		t.Fatalf("Write: unexpected error %v", err)
	}
	want := "  \n@@\n"
	if out.String() != want {
		t.Errorf("Write: expected %q, actual %q", want, out.String())
	}
}

func TestWriteRejectsTooSmallBuffer(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, 3, 3, []byte{1, 2}); err == nil {
		t.Errorf("Write: expected error for undersized buffer")
	}
}
