// packbuf is a small reflection based binary codec for plain structs
package packbuf

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// maxStringSize is the maximum string length that can be encoded
	// the number chosen was arbitrary
	maxStringSize = 65535

	// maxSliceLen stops a corrupt length prefix from allocating
	// a huge slice
	maxSliceLen = 1 << 16
)

// Read deserializes into the struct pointed to by data. Fields are read in
// the same order Write wrote them.
func Read(r io.Reader, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("packbuf: Read expects a pointer to a struct, not %T", data)
	}
	return readStruct(r, v.Elem())
}

func readStruct(r io.Reader, v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.Slice:
			if err := readSlice(r, field); err != nil {
				return errors.Wrapf(err, "field %s", v.Type().Field(i).Name)
			}
			continue
		case reflect.Struct:
			if err := readStruct(r, field); err != nil {
				return err
			}
			continue
		}
		if err := readValue(r, field); err != nil {
			return errors.Wrapf(err, "field %s of %s", v.Type().Field(i).Name, v.Type())
		}
	}
	return nil
}

func readSlice(r io.Reader, field reflect.Value) error {
	var sliceLenCompact int32
	if err := binary.Read(r, binary.LittleEndian, &sliceLenCompact); err != nil {
		return err
	}
	sliceLen := int(sliceLenCompact)
	if sliceLen < 0 || sliceLen > maxSliceLen {
		return errors.New("invalid slice length: " + strconv.Itoa(sliceLen))
	}
	if sliceLen == 0 {
		// Ignore setting if no data
		// This ensures the data stays as "nil"
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	t := field.Type()
	field.Set(reflect.MakeSlice(t, sliceLen, sliceLen))
	switch sliceType := t.Elem(); sliceType.Kind() {
	case reflect.Struct:
		for i := 0; i < sliceLen; i++ {
			if err := readStruct(r, field.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		ptrToType := sliceType.Elem()
		if ptrToType.Kind() != reflect.Struct {
			return errors.New("unable to handle []*Type where Type is not a struct")
		}
		for i := 0; i < sliceLen; i++ {
			elem := reflect.New(ptrToType)
			if err := readStruct(r, elem.Elem()); err != nil {
				return err
			}
			field.Index(i).Set(elem)
		}
	case reflect.Uint8:
		if _, err := io.ReadFull(r, field.Bytes()); err != nil {
			return err
		}
	default:
		for i := 0; i < sliceLen; i++ {
			if err := readValue(r, field.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func readValue(r io.Reader, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Bool:
		var value byte
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetBool(value != 0)
	case reflect.Uint8:
		var value uint8
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
	case reflect.Int, reflect.Int64:
		var value int64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(value)
	case reflect.Int8:
		var value int8
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(int64(value))
	case reflect.Int16:
		var value int16
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(int64(value))
	case reflect.Int32:
		var value int32
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(int64(value))
	case reflect.Uint16:
		var value uint16
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
	case reflect.Uint32:
		var value uint32
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
	case reflect.Uint64:
		var value uint64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(value)
	case reflect.Float32:
		var bits uint32
		if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
			return err
		}
		field.SetFloat(float64(math.Float32frombits(bits)))
	case reflect.Float64:
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetFloat(value)
	case reflect.String:
		var stringSize uint16
		if err := binary.Read(r, binary.LittleEndian, &stringSize); err != nil {
			return err
		}
		if stringSize == 0 {
			field.SetString("")
			return nil
		}
		stringData := make([]byte, stringSize)
		if _, err := io.ReadFull(r, stringData); err != nil {
			return err
		}
		field.SetString(string(stringData))
	default:
		return errors.Errorf("cannot read unsupported data type: %s", field.Type())
	}
	return nil
}
