package packbuf

import (
	"bytes"
	"reflect"
	"testing"
)

type testKind int32

type testPoint struct {
	X, Y int
}

type testItem struct {
	Kind  testKind
	Label string
	At    testPoint
}

type testDocument struct {
	Visible bool
	Scale   float32
	Items   []*testItem
	Marks   []uint16
}

func TestWriteReadNamedKinds(t *testing.T) {
	in := testDocument{
		Visible: true,
		Scale:   1.5,
		Items: []*testItem{
			{Kind: 2, Label: "1", At: testPoint{X: -30, Y: 30}},
			{Kind: 0, Label: "", At: testPoint{X: 256, Y: 240}},
		},
		Marks: []uint16{1, 65000},
	}
	var buf bytes.Buffer
	if err := Write(&buf, &in); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var out testDocument
	if err := Read(&buf, &out); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("decoded document differs\nwant: %+v\ngot:  %+v", in, out)
	}
}

func TestWriteRejectsUnexportedField(t *testing.T) {
	type hidden struct {
		Visible bool
		secret  int
	}
	v := hidden{secret: 1}
	if err := Write(&bytes.Buffer{}, &v); err == nil {
		t.Errorf("expected error when writing unexported field")
	}
}

func TestWriteRejectsNonPointer(t *testing.T) {
	if err := Write(&bytes.Buffer{}, testPoint{}); err == nil {
		t.Errorf("expected error when passing a struct by value")
	}
}

func TestReadTruncated(t *testing.T) {
	in := testItem{Kind: 1, Label: "goalkeeper", At: testPoint{X: 1, Y: 2}}
	var buf bytes.Buffer
	if err := Write(&buf, &in); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data := buf.Bytes()
	var out testItem
	if err := Read(bytes.NewReader(data[:len(data)-3]), &out); err == nil {
		t.Errorf("expected error when reading truncated data")
	}
}
