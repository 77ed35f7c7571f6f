package flag

import (
	// Stdlib
	"fmt"
	"strings"
)

// StringEnumFlag is a flag.Value that only accepts one of the given values.
type StringEnumFlag struct {
	values []string
	value  string
}

func NewStringEnumFlag(values []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{values, defaultValue}
}

func (f *StringEnumFlag) Value() string {
	return f.value
}

func (f *StringEnumFlag) String() string {
	return f.value
}

func (f *StringEnumFlag) Set(value string) error {
	for _, v := range f.values {
		if v == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("value not in {%v}: %v", strings.Join(f.values, "|"), value)
}
