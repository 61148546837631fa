package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func parseURLValues(values map[string][]string, dst any) error {
	dstValue := reflect.ValueOf(dst)
	if dstValue.Kind() != reflect.Ptr || dstValue.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer")
	}

	dstElem := dstValue.Elem()
	if dstElem.Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a pointer to a struct")
	}

	return setStructFields(dstElem, values)
}

func setStructFields(v reflect.Value, values map[string][]string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		if field.Anonymous {
			if err := setStructFields(fieldValue, values); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("json")
		if key == "" {
			key = field.Name
		}

		if fieldValue.Kind() == reflect.Struct {
			// Nested structs use dotted keys: "filter.name"
			nested := make(map[string][]string)
			prefix := key + "."
			for k, vals := range values {
				if strings.HasPrefix(k, prefix) {
					nested[strings.TrimPrefix(k, prefix)] = vals
				}
			}
			if err := setStructFields(fieldValue, nested); err != nil {
				return err
			}
			continue
		}

		if vals, ok := values[key]; ok {
			if err := setField(fieldValue, vals); err != nil {
				return fmt.Errorf("error setting field %s: %w", field.Name, err)
			}
		}
	}

	return nil
}

func setField(field reflect.Value, values []string) error {
	if len(values) == 0 {
		return nil
	}

	switch field.Kind() {
	case reflect.Ptr:
		if values[0] == "" {
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setScalar(field.Elem(), values[0])

	case reflect.Slice:
		slice := reflect.MakeSlice(field.Type(), len(values), len(values))
		for i, value := range values {
			elem := slice.Index(i)
			if elem.Kind() == reflect.Ptr {
				elem.Set(reflect.New(elem.Type().Elem()))
				elem = elem.Elem()
			}
			if err := setScalar(elem, value); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil

	default:
		return setScalar(field, values[0])
	}
}

func setScalar(field reflect.Value, value string) error {
	if value == "" {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
