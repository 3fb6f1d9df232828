package packbuf

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Write serializes the exported fields of the struct pointed to by data
func Write(w io.Writer, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("packbuf: Write expects a pointer to a struct, not %T", data)
	}
	return writeStruct(w, v.Elem())
}

func writeStruct(w io.Writer, v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			return errors.New("cannot serialize unexported field: " + v.Type().Field(i).Name)
		}
		switch field.Kind() {
		case reflect.Slice:
			if err := writeSlice(w, field); err != nil {
				return errors.Wrapf(err, "field %s", v.Type().Field(i).Name)
			}
			continue
		case reflect.Struct:
			if err := writeStruct(w, field); err != nil {
				return err
			}
			continue
		}
		if err := writeValue(w, field); err != nil {
			return errors.Wrapf(err, "field %s of %s", v.Type().Field(i).Name, v.Type())
		}
	}
	return nil
}

func writeSlice(w io.Writer, field reflect.Value) error {
	sliceLen := field.Len()
	if err := binary.Write(w, binary.LittleEndian, int32(sliceLen)); err != nil {
		return err
	}
	switch sliceType := field.Type().Elem(); sliceType.Kind() {
	case reflect.Struct:
		for i := 0; i < sliceLen; i++ {
			if err := writeStruct(w, field.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		if sliceType.Elem().Kind() != reflect.Struct {
			return errors.New("unable to handle []*Type where Type is not a struct")
		}
		for i := 0; i < sliceLen; i++ {
			elem := field.Index(i)
			if elem.IsNil() {
				return errors.New("unable to write nil pointer in slice at index " + strconv.Itoa(i))
			}
			if err := writeStruct(w, elem.Elem()); err != nil {
				return err
			}
		}
	case reflect.Uint8:
		if _, err := w.Write(field.Bytes()); err != nil {
			return err
		}
	default:
		for i := 0; i < sliceLen; i++ {
			if err := writeValue(w, field.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeValue switches on kind rather than type so that named types
// such as "type Role int32" are handled like their underlying type
func writeValue(w io.Writer, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Bool:
		var bs [1]byte
		if field.Bool() {
			bs[0] = 1
		}
		_, err := w.Write(bs[:])
		return err
	case reflect.Uint8:
		bs := [1]byte{byte(field.Uint())}
		_, err := w.Write(bs[:])
		return err
	case reflect.Int:
		// always 8 bytes so snapshots don't depend on the platform's int size
		return binary.Write(w, binary.LittleEndian, field.Int())
	case reflect.Int8:
		return binary.Write(w, binary.LittleEndian, int8(field.Int()))
	case reflect.Int16:
		return binary.Write(w, binary.LittleEndian, int16(field.Int()))
	case reflect.Int32:
		return binary.Write(w, binary.LittleEndian, int32(field.Int()))
	case reflect.Int64:
		return binary.Write(w, binary.LittleEndian, field.Int())
	case reflect.Uint16:
		return binary.Write(w, binary.LittleEndian, uint16(field.Uint()))
	case reflect.Uint32:
		return binary.Write(w, binary.LittleEndian, uint32(field.Uint()))
	case reflect.Uint64:
		return binary.Write(w, binary.LittleEndian, field.Uint())
	case reflect.Float32:
		return binary.Write(w, binary.LittleEndian, math.Float32bits(float32(field.Float())))
	case reflect.Float64:
		return binary.Write(w, binary.LittleEndian, field.Float())
	case reflect.String:
		s := field.String()
		if len(s) > maxStringSize {
			return errors.New("cannot write string larger than " + strconv.Itoa(maxStringSize))
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
			return err
		}
		_, err := io.WriteString(w, s)
		return err
	}
	return errors.Errorf("cannot write unsupported data type: %s", field.Type())
}
